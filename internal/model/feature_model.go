// FILE: internal/model/feature_model.go
// GORM model for the features (global catalog) table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Feature is a catalog entry owned by the platform operator. The default
// menu links are stored as an ordered JSON array; order is display order.
type Feature struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key              string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Description      string         `gorm:"type:text"`
	DefaultMenuLinks datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	IsActive         bool           `gorm:"default:true"`
	SortOrder        int            `gorm:"default:0"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
