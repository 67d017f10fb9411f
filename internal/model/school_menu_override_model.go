// FILE: internal/model/school_menu_override_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SchoolMenuOverride is a full replacement of a feature's default menu
// for one school. At most one row per (school, feature).
type SchoolMenuOverride struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolId  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_menu_overrides_pair,priority:1"`
	FeatureId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_menu_overrides_pair,priority:2"`
	MenuLinks datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (SchoolMenuOverride) TableName() string {
	return "school_menu_overrides"
}
