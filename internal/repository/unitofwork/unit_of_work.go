package unitofwork

import (
	"context"

	"schoolhub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RefreshTokenRepository() contract.RefreshTokenRepository
	SchoolRepository() contract.SchoolRepository
	FeatureRepository() contract.FeatureRepository
	SchoolFeatureRepository() contract.SchoolFeatureRepository
	MenuOverrideRepository() contract.MenuOverrideRepository
}
