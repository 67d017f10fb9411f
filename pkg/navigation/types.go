// FILE: pkg/navigation/types.go
// Core types for the feature entitlement & menu resolution engine.
package navigation

import (
	"context"

	"github.com/google/uuid"
)

// MenuLink is a single navigation entry. Enabled=false means the link is
// present in data but suppressed from display, which is distinct from the
// link being absent.
type MenuLink struct {
	Name    string `json:"name"`
	Href    string `json:"href"`
	Icon    string `json:"icon"`
	Enabled bool   `json:"enabled"`
}

// Feature is a global catalog entry. It is platform-owned and immutable
// from the tenant's perspective.
type Feature struct {
	Id               uuid.UUID
	Key              string // unique, stable, lowercase-with-separators
	Name             string
	Description      string
	DefaultMenuLinks []MenuLink // order is display order
	SortOrder        int
	IsActive         bool
}

// Slug returns the routing slug derived from the feature key. The same
// derivation is applied at catalog-authoring time and at request time.
func (f Feature) Slug() string {
	return Slugify(f.Key)
}

// Entitlement is one (school, feature) grant. Rows are never deleted,
// only toggled, so uniqueness on the pair is an invariant.
type Entitlement struct {
	SchoolId  uuid.UUID
	FeatureId uuid.UUID
	Enabled   bool
}

// MenuOverride fully replaces a feature's default menu for one school.
// It is a replacement, not a patch: absence means "use the defaults".
type MenuOverride struct {
	SchoolId  uuid.UUID
	FeatureId uuid.UUID
	MenuLinks []MenuLink
}

// ResolvedFeature carries a feature together with its effective,
// enabled-filtered menu links for one school.
type ResolvedFeature struct {
	Feature   Feature
	MenuLinks []MenuLink
}

// CatalogStore reads the global feature catalog. A missing feature is
// (nil, nil), not an error.
type CatalogStore interface {
	GetFeature(ctx context.Context, id uuid.UUID) (*Feature, error)
	ListFeatures(ctx context.Context) ([]Feature, error)
}

// EntitlementStore reads per-school entitlements and menu overrides.
// A missing override is (nil, nil).
type EntitlementStore interface {
	ListEntitlements(ctx context.Context, schoolId uuid.UUID) ([]Entitlement, error)
	GetOverride(ctx context.Context, schoolId, featureId uuid.UUID) (*MenuOverride, error)
}
