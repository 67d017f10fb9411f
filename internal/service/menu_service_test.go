// FILE: internal/service/menu_service_test.go
package service

import (
	"context"
	"sync/atomic"
	"testing"

	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/repository/adapter"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newMenuFixture() (*fakeRepoFactory, IMenuService) {
	factory := newFakeRepoFactory()
	resolver := navigation.NewResolver(
		adapter.NewCatalogStore(factory),
		adapter.NewEntitlementStore(factory),
	)
	return factory, NewMenuService(resolver)
}

// Store wrappers counting every read, so tests can prove the gate runs
// before any store access. Reads are counted atomically because the
// resolver fans out.
type countingCatalogStore struct {
	inner navigation.CatalogStore
	reads *atomic.Int64
}

func (s countingCatalogStore) GetFeature(ctx context.Context, id uuid.UUID) (*navigation.Feature, error) {
	s.reads.Add(1)
	return s.inner.GetFeature(ctx, id)
}

func (s countingCatalogStore) ListFeatures(ctx context.Context) ([]navigation.Feature, error) {
	s.reads.Add(1)
	return s.inner.ListFeatures(ctx)
}

type countingEntitlementStore struct {
	inner navigation.EntitlementStore
	reads *atomic.Int64
}

func (s countingEntitlementStore) ListEntitlements(ctx context.Context, schoolId uuid.UUID) ([]navigation.Entitlement, error) {
	s.reads.Add(1)
	return s.inner.ListEntitlements(ctx, schoolId)
}

func (s countingEntitlementStore) GetOverride(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.MenuOverride, error) {
	s.reads.Add(1)
	return s.inner.GetOverride(ctx, schoolId, featureId)
}

func TestMenuServiceGatesNonStaff(t *testing.T) {
	factory := newFakeRepoFactory()
	var reads atomic.Int64
	resolver := navigation.NewResolver(
		countingCatalogStore{inner: adapter.NewCatalogStore(factory), reads: &reads},
		countingEntitlementStore{inner: adapter.NewEntitlementStore(factory), reads: &reads},
	)
	svc := NewMenuService(resolver)
	ctx := context.Background()

	schoolId := uuid.New()
	featureId := uuid.New()
	factory.uow.features.items[featureId] = navigation.Feature{
		Id: featureId, Key: "fees", Name: "Fees", IsActive: true,
		DefaultMenuLinks: []navigation.MenuLink{{Name: "Invoices", Href: "/fees/invoices", Enabled: true}},
	}
	factory.uow.entitlements.items = []navigation.Entitlement{
		{SchoolId: schoolId, FeatureId: featureId, Enabled: true},
	}

	for _, role := range []entity.UserRole{entity.UserRoleStudent, entity.UserRoleParent, entity.UserRoleSuperAdmin, entity.UserRole("")} {
		res, err := svc.GetMenu(ctx, &schoolId, role)
		assert.NoError(t, err)
		assert.True(t, res.Gated, "role %q must be gated", role)
		assert.Empty(t, res.Features)

		match, err := svc.MatchPage(ctx, &schoolId, role, "fees", "invoices")
		assert.NoError(t, err)
		assert.Equal(t, "gated", match.Status)
	}

	// Gated requests must never reach the stores.
	assert.Zero(t, reads.Load())

	res, err := svc.GetMenu(ctx, &schoolId, entity.UserRoleTeacher)
	assert.NoError(t, err)
	assert.False(t, res.Gated)
	assert.Len(t, res.Features, 1)
	assert.Equal(t, "fees", res.Features[0].Slug)
	assert.Greater(t, reads.Load(), int64(0))
}

func TestMenuServiceNoSchoolBinding(t *testing.T) {
	_, svc := newMenuFixture()

	res, err := svc.GetMenu(context.Background(), nil, entity.UserRoleSchoolAdmin)
	assert.NoError(t, err)
	assert.False(t, res.Gated)
	assert.Empty(t, res.Features)
}

func TestMenuServiceMatchPage(t *testing.T) {
	factory, svc := newMenuFixture()
	ctx := context.Background()

	schoolId := uuid.New()
	featureId := uuid.New()
	factory.uow.features.items[featureId] = navigation.Feature{
		Id: featureId, Key: "staff_management", Name: "Staff Management", IsActive: true,
		DefaultMenuLinks: []navigation.MenuLink{
			{Name: "Dashboard", Href: "/staff/dashboard", Enabled: true},
			{Name: "Roster", Href: "/staff/roster", Enabled: true},
			{Name: "Payroll", Href: "/staff/payroll", Enabled: false},
		},
	}
	factory.uow.entitlements.items = []navigation.Entitlement{
		{SchoolId: schoolId, FeatureId: featureId, Enabled: true},
	}

	res, err := svc.MatchPage(ctx, &schoolId, entity.UserRoleTeacher, "staff-management", "roster")
	assert.NoError(t, err)
	assert.Equal(t, string(navigation.MatchFound), res.Status)
	assert.Equal(t, "Staff Management", res.FeatureName)
	assert.Equal(t, "/staff/roster", res.Link.Href)

	// Empty page slug falls back to the default page
	res, err = svc.MatchPage(ctx, &schoolId, entity.UserRoleTeacher, "staff-management", "")
	assert.NoError(t, err)
	assert.Equal(t, string(navigation.MatchFound), res.Status)
	assert.Equal(t, navigation.DefaultPageSlug, res.PageSlug)

	// Disabled links are invisible to routing
	res, err = svc.MatchPage(ctx, &schoolId, entity.UserRoleTeacher, "staff-management", "payroll")
	assert.NoError(t, err)
	assert.Equal(t, string(navigation.MatchPageNotImplemented), res.Status)
	assert.Nil(t, res.Link)

	res, err = svc.MatchPage(ctx, &schoolId, entity.UserRoleTeacher, "no-such-feature", "dashboard")
	assert.NoError(t, err)
	assert.Equal(t, string(navigation.MatchFeatureNotFound), res.Status)

	// Gated roles get a gated status, not a lookup result
	res, err = svc.MatchPage(ctx, &schoolId, entity.UserRoleStudent, "staff-management", "roster")
	assert.NoError(t, err)
	assert.Equal(t, "gated", res.Status)
}
