// FILE: internal/mapper/user_mapper.go
package mapper

import (
	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mdl *model.User) *entity.User {
	if mdl == nil {
		return nil
	}
	return &entity.User{
		Id:            mdl.Id,
		SchoolId:      mdl.SchoolId,
		Email:         mdl.Email,
		PasswordHash:  mdl.PasswordHash,
		FullName:      mdl.FullName,
		Role:          entity.UserRole(mdl.Role),
		Status:        entity.UserStatus(mdl.Status),
		EmailVerified: mdl.EmailVerified,
		AvatarURL:     mdl.AvatarURL,
		CreatedAt:     mdl.CreatedAt,
		UpdatedAt:     mdl.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		Id:            e.Id,
		SchoolId:      e.SchoolId,
		Email:         e.Email,
		PasswordHash:  e.PasswordHash,
		FullName:      e.FullName,
		Role:          string(e.Role),
		Status:        string(e.Status),
		EmailVerified: e.EmailVerified,
		AvatarURL:     e.AvatarURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *UserMapper) ToProviderModel(e *entity.UserProvider) *model.UserProvider {
	if e == nil {
		return nil
	}
	return &model.UserProvider{
		Id:             e.Id,
		UserId:         e.UserId,
		ProviderName:   e.ProviderName,
		ProviderUserId: e.ProviderUserId,
		AvatarURL:      e.AvatarURL,
		CreatedAt:      e.CreatedAt,
	}
}

type RefreshTokenMapper struct{}

func NewRefreshTokenMapper() *RefreshTokenMapper {
	return &RefreshTokenMapper{}
}

func (m *RefreshTokenMapper) ToEntity(mdl *model.UserRefreshToken) *entity.UserRefreshToken {
	if mdl == nil {
		return nil
	}
	return &entity.UserRefreshToken{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		TokenHash: mdl.TokenHash,
		ExpiresAt: mdl.ExpiresAt,
		Revoked:   mdl.Revoked,
		CreatedAt: mdl.CreatedAt,
		IpAddress: mdl.IpAddress,
		UserAgent: mdl.UserAgent,
	}
}

func (m *RefreshTokenMapper) ToModel(e *entity.UserRefreshToken) *model.UserRefreshToken {
	if e == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        e.Id,
		UserId:    e.UserId,
		TokenHash: e.TokenHash,
		ExpiresAt: e.ExpiresAt,
		Revoked:   e.Revoked,
		CreatedAt: e.CreatedAt,
		IpAddress: e.IpAddress,
		UserAgent: e.UserAgent,
	}
}
