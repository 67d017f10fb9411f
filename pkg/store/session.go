// FILE: pkg/store/session.go
package store

import (
	"time"

	"github.com/google/uuid"

	"schoolhub-be/internal/entity"
)

// Session is the in-process cached view of an authenticated principal.
// The navigation engine never reads this cache; handlers extract
// (schoolId, role) and pass them down explicitly.
type Session struct {
	ID        string
	UserID    uuid.UUID
	SchoolID  *uuid.UUID
	Role      entity.UserRole
	ExpiresAt time.Time
}
