// FILE: internal/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type School struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Subdomain  string    `gorm:"type:varchar(63);uniqueIndex;not null"`
	Status     string    `gorm:"type:school_status;default:'active'"`
	AdminEmail string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (School) TableName() string {
	return "schools"
}
