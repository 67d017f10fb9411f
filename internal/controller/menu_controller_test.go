// FILE: internal/controller/menu_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/pkg/serverutils"
	"schoolhub-be/internal/service"
	"schoolhub-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stub stores backing the resolver; the HTTP layer under test never
// touches a database.
type stubCatalog struct {
	features map[uuid.UUID]navigation.Feature
}

func (s *stubCatalog) GetFeature(ctx context.Context, id uuid.UUID) (*navigation.Feature, error) {
	if f, ok := s.features[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (s *stubCatalog) ListFeatures(ctx context.Context) ([]navigation.Feature, error) {
	out := make([]navigation.Feature, 0, len(s.features))
	for _, f := range s.features {
		out = append(out, f)
	}
	return out, nil
}

type stubEntitlements struct {
	entitlements []navigation.Entitlement
}

func (s *stubEntitlements) ListEntitlements(ctx context.Context, schoolId uuid.UUID) ([]navigation.Entitlement, error) {
	out := make([]navigation.Entitlement, 0)
	for _, e := range s.entitlements {
		if e.SchoolId == schoolId {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEntitlements) GetOverride(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.MenuOverride, error) {
	return nil, nil
}

func signTestToken(t *testing.T, userId uuid.UUID, schoolId *uuid.UUID, role entity.UserRole) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	if schoolId != nil {
		claims["school_id"] = schoolId.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test_secret"))
	assert.NoError(t, err)
	return signed
}

func newMenuTestApp(t *testing.T) (*fiber.App, uuid.UUID) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")

	schoolId := uuid.New()
	featureId := uuid.New()

	catalog := &stubCatalog{features: map[uuid.UUID]navigation.Feature{
		featureId: {
			Id: featureId, Key: "library", Name: "Library", IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/library/dashboard", Enabled: true},
				{Name: "Catalog", Href: "/library/catalog", Enabled: true},
			},
		},
	}}
	ents := &stubEntitlements{entitlements: []navigation.Entitlement{
		{SchoolId: schoolId, FeatureId: featureId, Enabled: true},
	}}

	menuService := service.NewMenuService(navigation.NewResolver(catalog, ents))

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewMenuController(menuService).RegisterRoutes(api)

	return app, schoolId
}

func decodeEnvelope(t *testing.T, body io.Reader, data interface{}) serverutils.Response {
	t.Helper()
	var envelope serverutils.Response
	raw, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(raw, &envelope))

	if data != nil && envelope.Data != nil {
		inner, err := json.Marshal(envelope.Data)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(inner, data))
	}
	return envelope
}

func TestMenuEndpointStaff(t *testing.T) {
	app, schoolId := newMenuTestApp(t)
	token := signTestToken(t, uuid.New(), &schoolId, entity.UserRoleTeacher)

	req := httptest.NewRequest("GET", "/api/menu", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var menu dto.MenuResponse
	envelope := decodeEnvelope(t, resp.Body, &menu)
	assert.True(t, envelope.Success)
	assert.False(t, menu.Gated)
	assert.Len(t, menu.Features, 1)
	assert.Equal(t, "library", menu.Features[0].Slug)
	assert.Len(t, menu.Features[0].MenuLinks, 2)
}

func TestMenuEndpointGatedRole(t *testing.T) {
	app, schoolId := newMenuTestApp(t)
	token := signTestToken(t, uuid.New(), &schoolId, entity.UserRoleStudent)

	req := httptest.NewRequest("GET", "/api/menu", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var menu dto.MenuResponse
	decodeEnvelope(t, resp.Body, &menu)
	assert.True(t, menu.Gated)
	assert.Empty(t, menu.Features)
}

func TestMenuEndpointRequiresToken(t *testing.T) {
	app, _ := newMenuTestApp(t)

	req := httptest.NewRequest("GET", "/api/menu", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMenuPageMatchEndpoint(t *testing.T) {
	app, schoolId := newMenuTestApp(t)
	token := signTestToken(t, uuid.New(), &schoolId, entity.UserRoleSchoolAdmin)

	cases := []struct {
		name       string
		path       string
		wantStatus string
		wantPage   string
	}{
		{"found", "/api/menu/library/catalog", string(navigation.MatchFound), "catalog"},
		{"default page", "/api/menu/library", string(navigation.MatchFound), navigation.DefaultPageSlug},
		{"unimplemented page", "/api/menu/library/reservations", string(navigation.MatchPageNotImplemented), "reservations"},
		{"unknown feature", "/api/menu/cafeteria/dashboard", string(navigation.MatchFeatureNotFound), "dashboard"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			var match dto.PageMatchResponse
			decodeEnvelope(t, resp.Body, &match)
			assert.Equal(t, tc.wantStatus, match.Status)
			assert.Equal(t, tc.wantPage, match.PageSlug)
		})
	}
}
