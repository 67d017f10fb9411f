// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	// Platform operator. Lives in its own menu namespace and never sees
	// the tenant navigation.
	UserRoleSuperAdmin UserRole = "super_admin"

	// Tenant staff roles.
	UserRoleSchoolAdmin UserRole = "school_admin"
	UserRoleTeacher     UserRole = "teacher"
	UserRoleAccountant  UserRole = "accountant"

	// End-customer roles.
	UserRoleStudent UserRole = "student"
	UserRoleParent  UserRole = "parent"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// StaffRoles is the closed allow-list of roles that may see the
// entitlement-driven navigation. Anything outside this set is gated.
var StaffRoles = []UserRole{
	UserRoleSchoolAdmin,
	UserRoleTeacher,
	UserRoleAccountant,
}

// IsStaff reports whether the role belongs to the tenant staff set.
// Unknown or empty roles are not staff (fail closed).
func (r UserRole) IsStaff() bool {
	for _, role := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	Id            uuid.UUID
	SchoolId      *uuid.UUID // nil for platform operators
	Email         string
	PasswordHash  *string
	FullName      string
	Role          UserRole
	Status        UserStatus
	EmailVerified bool
	AvatarURL     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	IpAddress string
	UserAgent string
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}
