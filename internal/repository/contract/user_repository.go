// FILE: internal/repository/contract/user_repository.go
package contract

import (
	"context"

	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SaveProvider(ctx context.Context, provider *entity.UserProvider) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.UserRefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.UserRefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userId uuid.UUID) error
}
