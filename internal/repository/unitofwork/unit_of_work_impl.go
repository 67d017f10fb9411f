package unitofwork

import (
	"context"
	"fmt"

	"schoolhub-be/internal/repository/contract"
	"schoolhub-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RefreshTokenRepository() contract.RefreshTokenRepository {
	return implementation.NewRefreshTokenRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SchoolRepository() contract.SchoolRepository {
	return implementation.NewSchoolRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeatureRepository() contract.FeatureRepository {
	return implementation.NewFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SchoolFeatureRepository() contract.SchoolFeatureRepository {
	return implementation.NewSchoolFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MenuOverrideRepository() contract.MenuOverrideRepository {
	return implementation.NewMenuOverrideRepository(u.getDB())
}
