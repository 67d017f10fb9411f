// FILE: internal/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSchoolRequest struct {
	Name       string `json:"name" validate:"required"`
	Subdomain  string `json:"subdomain" validate:"required,min=3,max=63,lowercase,alphanum"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
}

type SchoolResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Subdomain  string    `json:"subdomain"`
	Status     string    `json:"status"`
	AdminEmail string    `json:"admin_email"`
	CreatedAt  time.Time `json:"created_at"`
}

type PublishMenuChangedMessage struct {
	SchoolId   uuid.UUID `json:"school_id"`
	FeatureId  uuid.UUID `json:"feature_id"`
	FeatureKey string    `json:"feature_key"`
	Change     string    `json:"change"`
}
