// FILE: internal/dto/menu_dto.go
// DTOs for the resolved school menu and page routing
package dto

import "github.com/google/uuid"

// ResolvedFeatureDTO is one feature entry in the sidebar menu. A feature
// with no links is still listed; the client may hide its expander.
type ResolvedFeatureDTO struct {
	Id        uuid.UUID     `json:"id"`
	Key       string        `json:"key"`
	Slug      string        `json:"slug"`
	Name      string        `json:"name"`
	MenuLinks []MenuLinkDTO `json:"menu_links"`
}

// MenuResponse is the full navigation payload for one session. Gated is
// true when the requester's role may not see the tenant menu at all; the
// features list is then empty by construction.
type MenuResponse struct {
	Gated    bool                 `json:"gated"`
	Features []ResolvedFeatureDTO `json:"features"`
}

// PageMatchResponse reports where a (featureSlug, pageSlug) request
// landed. Status mirrors the engine's match variants; "page_not_implemented"
// is a normal outcome rendered as an under-development notice, carrying
// the attempted identifiers.
type PageMatchResponse struct {
	Status      string       `json:"status"`
	FeatureSlug string       `json:"feature_slug,omitempty"`
	FeatureName string       `json:"feature_name,omitempty"`
	PageSlug    string       `json:"page_slug,omitempty"`
	Link        *MenuLinkDTO `json:"link,omitempty"`
}
