// FILE: internal/service/entitlement_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/pkg/logger"
	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/pkg/events"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

var (
	ErrSchoolNotFound      = errors.New("school not found")
	ErrFeatureNotFound     = errors.New("feature not found")
	ErrEntitlementNotFound = errors.New("school is not entitled to this feature")
	ErrAlreadyGranted      = errors.New("feature already granted to this school")
)

type IEntitlementService interface {
	ListEntitlements(ctx context.Context, schoolId uuid.UUID) ([]*dto.EntitlementResponse, error)
	GrantFeature(ctx context.Context, schoolId uuid.UUID, req *dto.GrantFeatureRequest) (*dto.EntitlementResponse, error)
	ToggleEntitlement(ctx context.Context, schoolId, featureId uuid.UUID, enabled bool) (*dto.EntitlementResponse, error)
	GetMenuOverride(ctx context.Context, schoolId, featureId uuid.UUID) (*dto.MenuOverrideResponse, error)
	SetMenuOverride(ctx context.Context, schoolId, featureId uuid.UUID, req *dto.SetMenuOverrideRequest) (*dto.MenuOverrideResponse, error)
	ClearMenuOverride(ctx context.Context, schoolId, featureId uuid.UUID) error
}

type entitlementService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewEntitlementService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IEntitlementService {
	return &entitlementService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *entitlementService) ListEntitlements(ctx context.Context, schoolId uuid.UUID) ([]*dto.EntitlementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ents, err := uow.SchoolFeatureRepository().FindAllBySchool(ctx, schoolId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EntitlementResponse, 0, len(ents))
	for _, ent := range ents {
		result = append(result, &dto.EntitlementResponse{
			SchoolId:  ent.SchoolId,
			FeatureId: ent.FeatureId,
			Enabled:   ent.Enabled,
		})
	}
	return result, nil
}

func (s *entitlementService) GrantFeature(ctx context.Context, schoolId uuid.UUID, req *dto.GrantFeatureRequest) (*dto.EntitlementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	school, err := uow.SchoolRepository().FindOne(ctx, specification.ByID{ID: schoolId})
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.FeatureId})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, ErrFeatureNotFound
	}

	existing, err := uow.SchoolFeatureRepository().FindPair(ctx, schoolId, req.FeatureId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyGranted
	}

	ent := navigation.Entitlement{
		SchoolId:  schoolId,
		FeatureId: req.FeatureId,
		Enabled:   req.Enabled,
	}
	if err := uow.SchoolFeatureRepository().Create(ctx, &ent); err != nil {
		return nil, err
	}

	s.publishMenuChanged(ctx, schoolId, feature.Id, feature.Key, events.MenuChangeEntitlementGranted)

	return &dto.EntitlementResponse{
		SchoolId:  ent.SchoolId,
		FeatureId: ent.FeatureId,
		Enabled:   ent.Enabled,
	}, nil
}

func (s *entitlementService) ToggleEntitlement(ctx context.Context, schoolId, featureId uuid.UUID, enabled bool) (*dto.EntitlementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ent, err := uow.SchoolFeatureRepository().FindPair(ctx, schoolId, featureId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		// Rows are toggled, never deleted, so a missing pair means the
		// grant never happened.
		return nil, ErrEntitlementNotFound
	}

	if ent.Enabled != enabled {
		if err := uow.SchoolFeatureRepository().SetEnabled(ctx, schoolId, featureId, enabled); err != nil {
			return nil, err
		}
		ent.Enabled = enabled

		featureKey := ""
		if feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId}); err == nil && feature != nil {
			featureKey = feature.Key
		}
		s.publishMenuChanged(ctx, schoolId, featureId, featureKey, events.MenuChangeEntitlementToggled)
	}

	return &dto.EntitlementResponse{
		SchoolId:  ent.SchoolId,
		FeatureId: ent.FeatureId,
		Enabled:   ent.Enabled,
	}, nil
}

func (s *entitlementService) GetMenuOverride(ctx context.Context, schoolId, featureId uuid.UUID) (*dto.MenuOverrideResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	override, err := uow.MenuOverrideRepository().FindPair(ctx, schoolId, featureId)
	if err != nil {
		return nil, err
	}
	if override == nil {
		return nil, nil
	}

	return toMenuOverrideResponse(override), nil
}

func (s *entitlementService) SetMenuOverride(ctx context.Context, schoolId, featureId uuid.UUID, req *dto.SetMenuOverrideRequest) (*dto.MenuOverrideResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ent, err := uow.SchoolFeatureRepository().FindPair(ctx, schoolId, featureId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, ErrEntitlementNotFound
	}

	links := toMenuLinks(req.MenuLinks)
	if err := navigation.ValidateMenuLinks(links); err != nil {
		return nil, err
	}

	override := navigation.MenuOverride{
		SchoolId:  schoolId,
		FeatureId: featureId,
		MenuLinks: links,
	}
	if err := uow.MenuOverrideRepository().Save(ctx, &override); err != nil {
		return nil, err
	}

	featureKey := ""
	if feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId}); err == nil && feature != nil {
		featureKey = feature.Key
	}
	s.publishMenuChanged(ctx, schoolId, featureId, featureKey, events.MenuChangeOverrideSaved)

	return toMenuOverrideResponse(&override), nil
}

func (s *entitlementService) ClearMenuOverride(ctx context.Context, schoolId, featureId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	override, err := uow.MenuOverrideRepository().FindPair(ctx, schoolId, featureId)
	if err != nil {
		return err
	}
	if override == nil {
		// Clearing an absent override is a no-op, and no event fires:
		// the effective menu did not change.
		return nil
	}

	if err := uow.MenuOverrideRepository().Delete(ctx, schoolId, featureId); err != nil {
		return err
	}

	featureKey := ""
	if feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId}); err == nil && feature != nil {
		featureKey = feature.Key
	}
	s.publishMenuChanged(ctx, schoolId, featureId, featureKey, events.MenuChangeOverrideCleared)

	return nil
}

// publishMenuChanged emits the change onto the in-process bus. Delivery
// is auxiliary: a publish failure is logged, not returned, because the
// write that triggered it has already committed.
func (s *entitlementService) publishMenuChanged(ctx context.Context, schoolId, featureId uuid.UUID, featureKey, change string) {
	payload := dto.PublishMenuChangedMessage{
		SchoolId:   schoolId,
		FeatureId:  featureId,
		FeatureKey: featureKey,
		Change:     change,
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("EntitlementService", "Failed to marshal menu change event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("EntitlementService", "Failed to publish menu change event", map[string]interface{}{
			"school_id": schoolId,
			"change":    change,
			"error":     err.Error(),
		})
	}
}

func toMenuOverrideResponse(override *navigation.MenuOverride) *dto.MenuOverrideResponse {
	links := make([]dto.MenuLinkDTO, 0, len(override.MenuLinks))
	for _, link := range override.MenuLinks {
		links = append(links, toMenuLinkDTO(link))
	}
	return &dto.MenuOverrideResponse{
		FeatureId: override.FeatureId,
		MenuLinks: links,
	}
}
