// FILE: internal/repository/implementation/school_repository_impl.go
package implementation

import (
	"context"
	"errors"

	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/mapper"
	"schoolhub-be/internal/model"
	"schoolhub-be/internal/repository/contract"
	"schoolhub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SchoolRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchoolMapper
}

func NewSchoolRepository(db *gorm.DB) contract.SchoolRepository {
	return &SchoolRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchoolMapper(),
	}
}

func (r *SchoolRepositoryImpl) Create(ctx context.Context, school *entity.School) error {
	m := r.mapper.ToModel(school)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*school = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchoolRepositoryImpl) Update(ctx context.Context, school *entity.School) error {
	m := r.mapper.ToModel(school)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *SchoolRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.School, error) {
	var m model.School
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SchoolRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.School, error) {
	var models []*model.School
	query := applySpecifications(r.db.WithContext(ctx).Order("name ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SchoolRepositoryImpl) FindBySubdomain(ctx context.Context, subdomain string) (*entity.School, error) {
	var m model.School
	if err := r.db.WithContext(ctx).Where("subdomain = ?", subdomain).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
