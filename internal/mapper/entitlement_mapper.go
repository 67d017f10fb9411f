// FILE: internal/mapper/entitlement_mapper.go
// Mappers for entitlement and menu override rows
package mapper

import (
	"fmt"

	"schoolhub-be/internal/model"
	"schoolhub-be/pkg/navigation"
)

type EntitlementMapper struct{}

func NewEntitlementMapper() *EntitlementMapper {
	return &EntitlementMapper{}
}

func (m *EntitlementMapper) ToEntity(mdl *model.SchoolFeature) *navigation.Entitlement {
	if mdl == nil {
		return nil
	}
	return &navigation.Entitlement{
		SchoolId:  mdl.SchoolId,
		FeatureId: mdl.FeatureId,
		Enabled:   mdl.Enabled,
	}
}

func (m *EntitlementMapper) ToEntities(models []*model.SchoolFeature) []navigation.Entitlement {
	entities := make([]navigation.Entitlement, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, *m.ToEntity(mdl))
	}
	return entities
}

type MenuOverrideMapper struct{}

func NewMenuOverrideMapper() *MenuOverrideMapper {
	return &MenuOverrideMapper{}
}

func (m *MenuOverrideMapper) ToEntity(mdl *model.SchoolMenuOverride) (*navigation.MenuOverride, error) {
	if mdl == nil {
		return nil, nil
	}
	links, err := DecodeMenuLinks(mdl.MenuLinks)
	if err != nil {
		return nil, fmt.Errorf("override %s/%s: %w", mdl.SchoolId, mdl.FeatureId, err)
	}
	return &navigation.MenuOverride{
		SchoolId:  mdl.SchoolId,
		FeatureId: mdl.FeatureId,
		MenuLinks: links,
	}, nil
}

func (m *MenuOverrideMapper) ToModel(entity *navigation.MenuOverride) (*model.SchoolMenuOverride, error) {
	if entity == nil {
		return nil, nil
	}
	links, err := EncodeMenuLinks(entity.MenuLinks)
	if err != nil {
		return nil, fmt.Errorf("override %s/%s: %w", entity.SchoolId, entity.FeatureId, err)
	}
	return &model.SchoolMenuOverride{
		SchoolId:  entity.SchoolId,
		FeatureId: entity.FeatureId,
		MenuLinks: links,
	}, nil
}
