// FILE: internal/repository/adapter/navigation_stores.go
// Adapters exposing the GORM repositories as the navigation engine's
// store contracts. The engine itself never sees GORM.
package adapter

import (
	"context"

	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

type CatalogStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogStore(uowFactory unitofwork.RepositoryFactory) *CatalogStore {
	return &CatalogStore{uowFactory: uowFactory}
}

func (s *CatalogStore) GetFeature(ctx context.Context, id uuid.UUID) (*navigation.Feature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *CatalogStore) ListFeatures(ctx context.Context) ([]navigation.Feature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeatureRepository().FindAll(ctx)
}

type EntitlementStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEntitlementStore(uowFactory unitofwork.RepositoryFactory) *EntitlementStore {
	return &EntitlementStore{uowFactory: uowFactory}
}

func (s *EntitlementStore) ListEntitlements(ctx context.Context, schoolId uuid.UUID) ([]navigation.Entitlement, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SchoolFeatureRepository().FindAllBySchool(ctx, schoolId)
}

func (s *EntitlementStore) GetOverride(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.MenuOverride, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MenuOverrideRepository().FindPair(ctx, schoolId, featureId)
}
