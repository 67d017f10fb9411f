// FILE: internal/repository/implementation/user_repository_impl.go
package implementation

import (
	"context"
	"errors"

	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/mapper"
	"schoolhub-be/internal/model"
	"schoolhub-be/internal/repository/contract"
	"schoolhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := applySpecifications(r.db.WithContext(ctx).Order("created_at ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// SaveProvider upserts the external identity on its (provider, external
// user id) pair so repeated sign-ins refresh the linked account.
func (r *UserRepositoryImpl) SaveProvider(ctx context.Context, provider *entity.UserProvider) error {
	m := r.mapper.ToProviderModel(provider)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_name"}, {Name: "provider_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "avatar_url"}),
		}).
		Create(m).Error
}

type RefreshTokenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RefreshTokenMapper
}

func NewRefreshTokenRepository(db *gorm.DB) contract.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{
		db:     db,
		mapper: mapper.NewRefreshTokenMapper(),
	}
}

func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *entity.UserRefreshToken) error {
	m := r.mapper.ToModel(token)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RefreshTokenRepositoryImpl) FindByHash(ctx context.Context, tokenHash string) (*entity.UserRefreshToken, error) {
	var m model.UserRefreshToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RefreshTokenRepositoryImpl) Revoke(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.UserRefreshToken{}).
		Where("id = ?", id).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.UserRefreshToken{}).
		Where("user_id = ? AND revoked = false", userId).
		Update("revoked", true).Error
}
