// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"errors"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

type ICatalogService interface {
	GetAllFeatures(ctx context.Context) ([]*dto.FeatureResponse, error)
	GetFeature(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error)
	CreateFeature(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	UpdateFeature(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	DeleteFeature(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
	}
}

func (s *catalogService) GetAllFeatures(ctx context.Context) ([]*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FeatureResponse, 0, len(features))
	for i := range features {
		result = append(result, toFeatureResponse(&features[i]))
	}
	return result, nil
}

func (s *catalogService) GetFeature(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, nil
	}
	return toFeatureResponse(feature), nil
}

func (s *catalogService) CreateFeature(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.FeatureRepository().FindByKey(ctx, req.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("feature key already exists")
	}

	feature := navigation.Feature{
		Id:               uuid.New(),
		Key:              req.Key,
		Name:             req.Name,
		Description:      req.Description,
		DefaultMenuLinks: toMenuLinks(req.DefaultMenuLinks),
		IsActive:         req.IsActive,
		SortOrder:        req.SortOrder,
	}

	// Integrity is checked against the catalog as it would look after
	// the write, so a colliding slug or duplicate href never lands.
	if err := s.validateCandidate(ctx, uow, feature, uuid.Nil); err != nil {
		return nil, err
	}

	if err := uow.FeatureRepository().Create(ctx, &feature); err != nil {
		return nil, err
	}

	return toFeatureResponse(&feature), nil
}

func (s *catalogService) UpdateFeature(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, nil
	}

	// Key is immutable: routing slugs are derived from it and external
	// bookmarks depend on them staying stable.
	if req.Name != nil {
		feature.Name = *req.Name
	}
	if req.Description != nil {
		feature.Description = *req.Description
	}
	if req.DefaultMenuLinks != nil {
		feature.DefaultMenuLinks = toMenuLinks(req.DefaultMenuLinks)
	}
	if req.IsActive != nil {
		feature.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		feature.SortOrder = *req.SortOrder
	}

	if err := s.validateCandidate(ctx, uow, *feature, feature.Id); err != nil {
		return nil, err
	}

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	return toFeatureResponse(feature), nil
}

func (s *catalogService) DeleteFeature(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feature == nil {
		return nil
	}

	// Entitlement rows pointing at the removed feature become stale and
	// are skipped at resolve time, so no cascade is needed here.
	return uow.FeatureRepository().Delete(ctx, id)
}

// validateCandidate runs catalog integrity checks over the current
// catalog with the candidate feature swapped in. excludeId drops the
// stored row being replaced on update.
func (s *catalogService) validateCandidate(ctx context.Context, uow unitofwork.UnitOfWork, candidate navigation.Feature, excludeId uuid.UUID) error {
	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return err
	}

	catalog := make([]navigation.Feature, 0, len(features)+1)
	for _, f := range features {
		if f.Id == excludeId {
			continue
		}
		catalog = append(catalog, f)
	}
	catalog = append(catalog, candidate)

	return navigation.ValidateCatalog(catalog)
}

func toFeatureResponse(f *navigation.Feature) *dto.FeatureResponse {
	links := make([]dto.MenuLinkDTO, 0, len(f.DefaultMenuLinks))
	for _, link := range f.DefaultMenuLinks {
		links = append(links, toMenuLinkDTO(link))
	}
	return &dto.FeatureResponse{
		Id:               f.Id,
		Key:              f.Key,
		Slug:             f.Slug(),
		Name:             f.Name,
		Description:      f.Description,
		DefaultMenuLinks: links,
		IsActive:         f.IsActive,
		SortOrder:        f.SortOrder,
	}
}

func toMenuLinks(links []dto.MenuLinkDTO) []navigation.MenuLink {
	out := make([]navigation.MenuLink, 0, len(links))
	for _, link := range links {
		out = append(out, navigation.MenuLink{
			Name:    link.Name,
			Href:    link.Href,
			Icon:    link.Icon,
			Enabled: link.Enabled,
		})
	}
	return out
}
