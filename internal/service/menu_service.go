// FILE: internal/service/menu_service.go
package service

import (
	"context"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/entity"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

type IMenuService interface {
	GetMenu(ctx context.Context, schoolId *uuid.UUID, role entity.UserRole) (*dto.MenuResponse, error)
	MatchPage(ctx context.Context, schoolId *uuid.UUID, role entity.UserRole, featureSlug, pageSlug string) (*dto.PageMatchResponse, error)
}

type menuService struct {
	resolver *navigation.Resolver
}

func NewMenuService(resolver *navigation.Resolver) IMenuService {
	return &menuService{
		resolver: resolver,
	}
}

// GetMenu returns the resolved navigation for one session. The role gate
// runs before any store access: gated roles and school-less principals
// get an empty menu without touching the database.
func (s *menuService) GetMenu(ctx context.Context, schoolId *uuid.UUID, role entity.UserRole) (*dto.MenuResponse, error) {
	if !navigation.CanViewMenu(role) {
		return &dto.MenuResponse{
			Gated:    true,
			Features: []dto.ResolvedFeatureDTO{},
		}, nil
	}

	if schoolId == nil {
		// Staff role without a tenant binding. Treated as a school with
		// no entitlements rather than an error.
		return &dto.MenuResponse{
			Gated:    false,
			Features: []dto.ResolvedFeatureDTO{},
		}, nil
	}

	resolved, err := s.resolver.Resolve(ctx, *schoolId)
	if err != nil {
		return nil, err
	}

	return &dto.MenuResponse{
		Gated:    false,
		Features: toResolvedFeatureDTOs(resolved),
	}, nil
}

// MatchPage locates a (featureSlug, pageSlug) request within the
// session's resolved menu. Gated sessions and unimplemented pages are
// normal outcomes carried in the status field, never errors.
func (s *menuService) MatchPage(ctx context.Context, schoolId *uuid.UUID, role entity.UserRole, featureSlug, pageSlug string) (*dto.PageMatchResponse, error) {
	if !navigation.CanViewMenu(role) {
		return &dto.PageMatchResponse{
			Status:      "gated",
			FeatureSlug: featureSlug,
			PageSlug:    pageSlug,
		}, nil
	}

	var resolved []navigation.ResolvedFeature
	if schoolId != nil {
		var err error
		resolved, err = s.resolver.Resolve(ctx, *schoolId)
		if err != nil {
			return nil, err
		}
	}

	result := navigation.Match(resolved, featureSlug, pageSlug)

	res := &dto.PageMatchResponse{
		Status:      string(result.Status),
		FeatureSlug: featureSlug,
		PageSlug:    result.PageSlug,
	}
	if result.Feature != nil {
		res.FeatureName = result.Feature.Name
	}
	if result.Link != nil {
		link := toMenuLinkDTO(*result.Link)
		res.Link = &link
	}
	return res, nil
}

func toResolvedFeatureDTOs(resolved []navigation.ResolvedFeature) []dto.ResolvedFeatureDTO {
	out := make([]dto.ResolvedFeatureDTO, 0, len(resolved))
	for _, rf := range resolved {
		links := make([]dto.MenuLinkDTO, 0, len(rf.MenuLinks))
		for _, link := range rf.MenuLinks {
			links = append(links, toMenuLinkDTO(link))
		}
		out = append(out, dto.ResolvedFeatureDTO{
			Id:        rf.Feature.Id,
			Key:       rf.Feature.Key,
			Slug:      rf.Feature.Slug(),
			Name:      rf.Feature.Name,
			MenuLinks: links,
		})
	}
	return out
}

func toMenuLinkDTO(link navigation.MenuLink) dto.MenuLinkDTO {
	return dto.MenuLinkDTO{
		Name:    link.Name,
		Href:    link.Href,
		Icon:    link.Icon,
		Enabled: link.Enabled,
	}
}
