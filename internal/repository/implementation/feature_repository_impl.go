// FILE: internal/repository/implementation/feature_repository_impl.go
// Implementation of FeatureRepository
package implementation

import (
	"context"
	"errors"

	"schoolhub-be/internal/mapper"
	"schoolhub-be/internal/model"
	"schoolhub-be/internal/repository/contract"
	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewFeatureRepository(db *gorm.DB) contract.FeatureRepository {
	return &FeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeatureRepositoryImpl) Create(ctx context.Context, feature *navigation.Feature) error {
	m, err := r.mapper.ToModel(feature)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entity, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*feature = *entity
	return nil
}

func (r *FeatureRepositoryImpl) Update(ctx context.Context, feature *navigation.Feature) error {
	m, err := r.mapper.ToModel(feature)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *FeatureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Feature{}, id).Error
}

func (r *FeatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*navigation.Feature, error) {
	var m model.Feature
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *FeatureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]navigation.Feature, error) {
	var models []*model.Feature
	query := applySpecifications(r.db.WithContext(ctx).Order("sort_order ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *FeatureRepositoryImpl) FindByKey(ctx context.Context, key string) (*navigation.Feature, error) {
	var m model.Feature
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
