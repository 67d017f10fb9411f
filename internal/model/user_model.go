// FILE: internal/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolId      *uuid.UUID `gorm:"type:uuid;index"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  *string    `gorm:"type:varchar(255)"`
	FullName      string     `gorm:"type:varchar(255);not null"`
	Role          string     `gorm:"type:user_role;default:'teacher'"`
	Status        string     `gorm:"type:user_status;default:'pending'"`
	EmailVerified bool       `gorm:"default:false"`
	AvatarURL     *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserRefreshToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
}

func (UserRefreshToken) TableName() string {
	return "user_refresh_tokens"
}

type UserProvider struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderName   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_providers_identity,priority:1"`
	ProviderUserId string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_providers_identity,priority:2"`
	AvatarURL      string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (UserProvider) TableName() string {
	return "user_providers"
}
