// FILE: internal/mapper/school_mapper.go
package mapper

import (
	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/model"
)

type SchoolMapper struct{}

func NewSchoolMapper() *SchoolMapper {
	return &SchoolMapper{}
}

func (m *SchoolMapper) ToEntity(mdl *model.School) *entity.School {
	if mdl == nil {
		return nil
	}
	return &entity.School{
		Id:         mdl.Id,
		Name:       mdl.Name,
		Subdomain:  mdl.Subdomain,
		Status:     entity.SchoolStatus(mdl.Status),
		AdminEmail: mdl.AdminEmail,
		CreatedAt:  mdl.CreatedAt,
		UpdatedAt:  mdl.UpdatedAt,
	}
}

func (m *SchoolMapper) ToModel(e *entity.School) *model.School {
	if e == nil {
		return nil
	}
	return &model.School{
		Id:         e.Id,
		Name:       e.Name,
		Subdomain:  e.Subdomain,
		Status:     string(e.Status),
		AdminEmail: e.AdminEmail,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (m *SchoolMapper) ToEntities(models []*model.School) []*entity.School {
	entities := make([]*entity.School, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
