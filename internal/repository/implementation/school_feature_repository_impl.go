// FILE: internal/repository/implementation/school_feature_repository_impl.go
// Implementations of SchoolFeatureRepository and MenuOverrideRepository
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
	"gorm.io/gorm/clause"
)

type SchoolFeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntitlementMapper
}

func NewSchoolFeatureRepository(db *gorm.DB) contract.SchoolFeatureRepository {
	return &SchoolFeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntitlementMapper(),
	}
}

func (r *SchoolFeatureRepositoryImpl) Create(ctx context.Context, entitlement *navigation.Entitlement) error {
	m := &model.SchoolFeature{
		SchoolId:  entitlement.SchoolId,
		FeatureId: entitlement.FeatureId,
		Enabled:   entitlement.Enabled,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *SchoolFeatureRepositoryImpl) SetEnabled(ctx context.Context, schoolId, featureId uuid.UUID, enabled bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.SchoolFeature{}).
		Where("school_id = ? AND feature_id = ?", schoolId, featureId).
		Update("enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SchoolFeatureRepositoryImpl) FindPair(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.Entitlement, error) {
	var m model.SchoolFeature
	err := r.db.WithContext(ctx).
		Where("school_id = ? AND feature_id = ?", schoolId, featureId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SchoolFeatureRepositoryImpl) FindAllBySchool(ctx context.Context, schoolId uuid.UUID, specs ...specification.Specification) ([]navigation.Entitlement, error) {
	var models []*model.SchoolFeature
	query := applySpecifications(
		r.db.WithContext(ctx).Where("school_id = ?", schoolId).Order("created_at ASC"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type MenuOverrideRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MenuOverrideMapper
}

func NewMenuOverrideRepository(db *gorm.DB) contract.MenuOverrideRepository {
	return &MenuOverrideRepositoryImpl{
		db:     db,
		mapper: mapper.NewMenuOverrideMapper(),
	}
}

// Save upserts on the (school, feature) pair so at most one override row
// exists per feature per tenant.
func (r *MenuOverrideRepositoryImpl) Save(ctx context.Context, override *navigation.MenuOverride) error {
	m, err := r.mapper.ToModel(override)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "school_id"}, {Name: "feature_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"menu_links", "updated_at"}),
		}).
		Create(m).Error
}

func (r *MenuOverrideRepositoryImpl) Delete(ctx context.Context, schoolId, featureId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("school_id = ? AND feature_id = ?", schoolId, featureId).
		Delete(&model.SchoolMenuOverride{}).Error
}

func (r *MenuOverrideRepositoryImpl) FindPair(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.MenuOverride, error) {
	var m model.SchoolMenuOverride
	err := r.db.WithContext(ctx).
		Where("school_id = ? AND feature_id = ?", schoolId, featureId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
