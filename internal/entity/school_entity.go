// FILE: internal/entity/school_entity.go
// Domain entity for tenant schools
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SchoolStatus string

const (
	SchoolStatusActive    SchoolStatus = "active"
	SchoolStatusSuspended SchoolStatus = "suspended"
)

// School is a tenant organization. Entitlements and menu overrides are
// scoped to a school; nothing leaks across tenants.
type School struct {
	Id         uuid.UUID
	Name       string
	Subdomain  string // unique, stable tenant handle
	Status     SchoolStatus
	AdminEmail string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
