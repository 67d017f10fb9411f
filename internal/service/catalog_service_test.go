// FILE: internal/service/catalog_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"schoolhub-be/internal/dto"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCatalogServiceCreateFeature(t *testing.T) {
	factory := newFakeRepoFactory()
	svc := NewCatalogService(factory)
	ctx := context.Background()

	res, err := svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:  "staff_management",
		Name: "Staff Management",
		DefaultMenuLinks: []dto.MenuLinkDTO{
			{Name: "Dashboard", Href: "/staff/dashboard", Enabled: true},
			{Name: "Roster", Href: "/staff/roster", Enabled: true},
		},
		IsActive: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "staff_management", res.Key)
	assert.Equal(t, "staff-management", res.Slug)

	// Duplicate key is rejected before any integrity check runs
	_, err = svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:      "staff_management",
		Name:     "Duplicate",
		IsActive: true,
	})
	assert.Error(t, err)
}

func TestCatalogServiceRejectsSlugCollision(t *testing.T) {
	factory := newFakeRepoFactory()
	svc := NewCatalogService(factory)
	ctx := context.Background()

	_, err := svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:      "fee_billing",
		Name:     "Fees",
		IsActive: true,
	})
	assert.NoError(t, err)

	// "fee.billing" slugifies to the same "fee-billing" as "fee_billing"
	_, err = svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:      "fee.billing",
		Name:     "Fees Again",
		IsActive: true,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, navigation.ErrCatalogIntegrity))
}

func TestCatalogServiceRejectsDuplicateHref(t *testing.T) {
	factory := newFakeRepoFactory()
	svc := NewCatalogService(factory)
	ctx := context.Background()

	_, err := svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:  "library",
		Name: "Library",
		DefaultMenuLinks: []dto.MenuLinkDTO{
			{Name: "Catalog", Href: "/library/catalog", Enabled: true},
			{Name: "Catalog Again", Href: "/library/catalog", Enabled: true},
		},
		IsActive: true,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, navigation.ErrCatalogIntegrity))
}

func TestCatalogServiceUpdateKeepsKey(t *testing.T) {
	factory := newFakeRepoFactory()
	svc := NewCatalogService(factory)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:      "examinations",
		Name:     "Examinations",
		IsActive: true,
	})
	assert.NoError(t, err)

	newName := "Exams & Grading"
	inactive := false
	updated, err := svc.UpdateFeature(ctx, created.Id, &dto.UpdateFeatureRequest{
		Name:     &newName,
		IsActive: &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, "examinations", updated.Key)
	assert.Equal(t, "Exams & Grading", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestCatalogServiceUpdateUnknownFeature(t *testing.T) {
	factory := newFakeRepoFactory()
	svc := NewCatalogService(factory)

	name := "Ghost"
	res, err := svc.UpdateFeature(context.Background(), uuid.New(), &dto.UpdateFeatureRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestCatalogServiceDeleteIsIdempotent(t *testing.T) {
	factory := newFakeRepoFactory()
	svc := NewCatalogService(factory)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, &dto.CreateFeatureRequest{
		Key:      "timetable",
		Name:     "Timetable",
		IsActive: true,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteFeature(ctx, created.Id))
	assert.NoError(t, svc.DeleteFeature(ctx, created.Id))

	all, err := svc.GetAllFeatures(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
}
