package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySchool scopes a query to one tenant.
type BySchool struct {
	SchoolID uuid.UUID
}

func (s BySchool) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("school_id = ?", s.SchoolID)
}

// ByFeature filters by feature reference.
type ByFeature struct {
	FeatureID uuid.UUID
}

func (s ByFeature) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ?", s.FeatureID)
}

// ActiveOnly keeps rows with is_active = true.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// EnabledOnly keeps rows with enabled = true.
type EnabledOnly struct{}

func (s EnabledOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", true)
}
