// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"schoolhub-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Locals keys set by JwtMiddleware.
const (
	LocalUserId   = "user_id"
	LocalSchoolId = "school_id"
	LocalRole     = "role"
)

// JwtMiddleware validates the bearer token and stashes the principal's
// identity in locals. Credential validation happens only here; downstream
// code receives (schoolId, role) as plain values.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
	}

	ctx.Locals(LocalUserId, claims["user_id"])
	ctx.Locals(LocalSchoolId, claims["school_id"])
	ctx.Locals(LocalRole, claims["role"])
	return ctx.Next()
}

// RoleFromLocals returns the requester's role. An absent or malformed
// claim comes back as the empty role, which every gate denies.
func RoleFromLocals(ctx *fiber.Ctx) entity.UserRole {
	if role, ok := ctx.Locals(LocalRole).(string); ok {
		return entity.UserRole(role)
	}
	return entity.UserRole("")
}

// UserIdFromLocals parses the requester's id claim.
func UserIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(LocalUserId).(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	return uuid.Parse(raw)
}

// SchoolIdFromLocals returns the requester's tenant binding, nil when
// the claim is absent (platform operators carry no school).
func SchoolIdFromLocals(ctx *fiber.Ctx) *uuid.UUID {
	raw, ok := ctx.Locals(LocalSchoolId).(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// RequireRoles allows only the listed roles past.
func RequireRoles(roles ...entity.UserRole) fiber.Handler {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(ctx *fiber.Ctx) error {
		if _, ok := allowed[RoleFromLocals(ctx)]; !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Forbidden"))
		}
		return ctx.Next()
	}
}
