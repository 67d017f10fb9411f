// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature model <-> navigation.Feature conversion
package mapper

import (
	"encoding/json"
	"fmt"

	"schoolhub-be/internal/model"
	"schoolhub-be/pkg/navigation"

	"gorm.io/datatypes"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(mdl *model.Feature) (*navigation.Feature, error) {
	if mdl == nil {
		return nil, nil
	}
	links, err := DecodeMenuLinks(mdl.DefaultMenuLinks)
	if err != nil {
		return nil, fmt.Errorf("feature %s: %w", mdl.Key, err)
	}
	return &navigation.Feature{
		Id:               mdl.Id,
		Key:              mdl.Key,
		Name:             mdl.Name,
		Description:      mdl.Description,
		DefaultMenuLinks: links,
		IsActive:         mdl.IsActive,
		SortOrder:        mdl.SortOrder,
	}, nil
}

func (m *FeatureMapper) ToModel(entity *navigation.Feature) (*model.Feature, error) {
	if entity == nil {
		return nil, nil
	}
	links, err := EncodeMenuLinks(entity.DefaultMenuLinks)
	if err != nil {
		return nil, fmt.Errorf("feature %s: %w", entity.Key, err)
	}
	return &model.Feature{
		Id:               entity.Id,
		Key:              entity.Key,
		Name:             entity.Name,
		Description:      entity.Description,
		DefaultMenuLinks: links,
		IsActive:         entity.IsActive,
		SortOrder:        entity.SortOrder,
	}, nil
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) ([]navigation.Feature, error) {
	entities := make([]navigation.Feature, 0, len(models))
	for _, mdl := range models {
		entity, err := m.ToEntity(mdl)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// DecodeMenuLinks parses a stored jsonb array. An empty column decodes to
// an empty list rather than nil so order-preserving appends stay safe.
func DecodeMenuLinks(raw datatypes.JSON) ([]navigation.MenuLink, error) {
	if len(raw) == 0 {
		return []navigation.MenuLink{}, nil
	}
	var links []navigation.MenuLink
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil, fmt.Errorf("decode menu links: %w", err)
	}
	return links, nil
}

func EncodeMenuLinks(links []navigation.MenuLink) (datatypes.JSON, error) {
	if links == nil {
		links = []navigation.MenuLink{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("encode menu links: %w", err)
	}
	return datatypes.JSON(raw), nil
}
