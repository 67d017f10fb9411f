// FILE: internal/dto/feature_dto.go
// DTOs for the feature catalog and entitlement administration
package dto

import "github.com/google/uuid"

type MenuLinkDTO struct {
	Name    string `json:"name" validate:"required"`
	Href    string `json:"href" validate:"required,startswith=/"`
	Icon    string `json:"icon,omitempty"`
	Enabled bool   `json:"enabled"`
}

// CreateFeatureRequest adds a new feature to the global catalog
type CreateFeatureRequest struct {
	Key              string        `json:"key" validate:"required,min=2,max=100"`
	Name             string        `json:"name" validate:"required"`
	Description      string        `json:"description,omitempty"`
	DefaultMenuLinks []MenuLinkDTO `json:"default_menu_links" validate:"dive"`
	IsActive         bool          `json:"is_active"`
	SortOrder        int           `json:"sort_order"`
}

// UpdateFeatureRequest updates a catalog feature. Key is immutable:
// external bookmarks depend on the derived slug staying stable.
type UpdateFeatureRequest struct {
	Name             *string       `json:"name,omitempty"`
	Description      *string       `json:"description,omitempty"`
	DefaultMenuLinks []MenuLinkDTO `json:"default_menu_links,omitempty" validate:"omitempty,dive"`
	IsActive         *bool         `json:"is_active,omitempty"`
	SortOrder        *int          `json:"sort_order,omitempty"`
}

type FeatureResponse struct {
	Id               uuid.UUID     `json:"id"`
	Key              string        `json:"key"`
	Slug             string        `json:"slug"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	DefaultMenuLinks []MenuLinkDTO `json:"default_menu_links"`
	IsActive         bool          `json:"is_active"`
	SortOrder        int           `json:"sort_order"`
}

// GrantFeatureRequest entitles a school to a catalog feature
type GrantFeatureRequest struct {
	FeatureId uuid.UUID `json:"feature_id" validate:"required"`
	Enabled   bool      `json:"enabled"`
}

// ToggleEntitlementRequest flips an existing entitlement row
type ToggleEntitlementRequest struct {
	Enabled bool `json:"enabled"`
}

type EntitlementResponse struct {
	SchoolId  uuid.UUID `json:"school_id"`
	FeatureId uuid.UUID `json:"feature_id"`
	Enabled   bool      `json:"enabled"`
}

// SetMenuOverrideRequest fully replaces a feature's menu for one school
type SetMenuOverrideRequest struct {
	MenuLinks []MenuLinkDTO `json:"menu_links" validate:"required,dive"`
}

type MenuOverrideResponse struct {
	FeatureId uuid.UUID     `json:"feature_id"`
	MenuLinks []MenuLinkDTO `json:"menu_links"`
}
