// FILE: internal/repository/contract/school_feature_repository.go
// Repository interfaces for entitlements and menu overrides
package contract

import (
	"context"

	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

// SchoolFeatureRepository manages entitlement rows. Rows are created once
// per (school, feature) pair and toggled afterwards, never deleted.
type SchoolFeatureRepository interface {
	Create(ctx context.Context, entitlement *navigation.Entitlement) error
	SetEnabled(ctx context.Context, schoolId, featureId uuid.UUID, enabled bool) error
	FindPair(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.Entitlement, error)
	FindAllBySchool(ctx context.Context, schoolId uuid.UUID, specs ...specification.Specification) ([]navigation.Entitlement, error)
}

// MenuOverrideRepository manages per-school menu replacements. Save is an
// upsert on the (school, feature) pair.
type MenuOverrideRepository interface {
	Save(ctx context.Context, override *navigation.MenuOverride) error
	Delete(ctx context.Context, schoolId, featureId uuid.UUID) error
	FindPair(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.MenuOverride, error)
}
