// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/repository/memory"
	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/pkg/events"
	pktNats "schoolhub-be/pkg/nats"
	"schoolhub-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, userId uuid.UUID, refreshToken string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		eventPublisher: eventPublisher,
	}
}

const accessTokenExpiry = time.Hour * 24

func hashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

// signAccessToken issues an HS256 JWT carrying the full principal. The
// school_id claim is omitted for platform operators, who have no tenant.
func signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	if user.SchoolId != nil {
		claims["school_id"] = user.SchoolId.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, errors.New("user registered via OAuth")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}
	if user.Status == entity.UserStatusPending {
		return nil, errors.New("account is pending activation")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string
	if req.RememberMe {
		rawRefreshToken = uuid.New().String()

		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			CreatedAt: time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}

		if err := uow.RefreshTokenRepository().Create(ctx, refreshTokenEntity); err != nil {
			return nil, fmt.Errorf("failed to create session: %v", err)
		}
	}

	s.sessions.Save(&store.Session{
		ID:        user.Id.String(),
		UserID:    user.Id,
		SchoolID:  user.SchoolId,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(accessTokenExpiry),
	})

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"role":    string(user.Role),
				"device":  userAgent,
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User:         toUserProfile(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.RefreshTokenRepository().FindByHash(ctx, hashToken(req.RefreshToken))
	if err != nil {
		return nil, err
	}
	if tokenEntity == nil || tokenEntity.Revoked {
		return nil, errors.New("invalid refresh token")
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return nil, errors.New("refresh token expired")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tokenEntity.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == entity.UserStatusBlocked {
		return nil, errors.New("invalid refresh token")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: signedToken}, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	s.sessions.Delete(userId.String())

	if refreshToken == "" {
		return uow.RefreshTokenRepository().RevokeAllForUser(ctx, userId)
	}

	tokenEntity, err := uow.RefreshTokenRepository().FindByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return err
	}
	if tokenEntity == nil {
		return nil
	}
	return uow.RefreshTokenRepository().Revoke(ctx, tokenEntity.Id)
}

func toUserProfile(user *entity.User) dto.UserProfileResponse {
	res := dto.UserProfileResponse{
		Id:        user.Id,
		SchoolId:  user.SchoolId,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
	if user.AvatarURL != nil {
		res.AvatarURL = *user.AvatarURL
	}
	return res
}
