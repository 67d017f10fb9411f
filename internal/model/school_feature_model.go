// FILE: internal/model/school_feature_model.go
// GORM model for per-school feature entitlements
package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolFeature is one entitlement row per (school, feature) pair.
// Rows are toggled, never deleted, to preserve grant history.
type SchoolFeature struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_school_features_pair,priority:1"`
	FeatureId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_school_features_pair,priority:2"`
	Enabled   bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SchoolFeature) TableName() string {
	return "school_features"
}
