package navigation

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/google/uuid"
)

// In-memory stores for resolver tests.

type fakeCatalog struct {
	features map[uuid.UUID]Feature
	err      error
}

func (c *fakeCatalog) GetFeature(_ context.Context, id uuid.UUID) (*Feature, error) {
	if c.err != nil {
		return nil, c.err
	}
	if f, ok := c.features[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (c *fakeCatalog) ListFeatures(_ context.Context) ([]Feature, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]Feature, 0, len(c.features))
	for _, f := range c.features {
		out = append(out, f)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key < out[b].Key })
	return out, nil
}

type fakeEntitlements struct {
	entitlements map[uuid.UUID][]Entitlement
	overrides    map[uuid.UUID]map[uuid.UUID]MenuOverride
	overrideErr  error
}

func (e *fakeEntitlements) ListEntitlements(_ context.Context, schoolId uuid.UUID) ([]Entitlement, error) {
	return e.entitlements[schoolId], nil
}

func (e *fakeEntitlements) GetOverride(_ context.Context, schoolId, featureId uuid.UUID) (*MenuOverride, error) {
	if e.overrideErr != nil {
		return nil, e.overrideErr
	}
	if byFeature, ok := e.overrides[schoolId]; ok {
		if ov, ok := byFeature[featureId]; ok {
			return &ov, nil
		}
	}
	return nil, nil
}

func staffFeature() Feature {
	return Feature{
		Id:       uuid.New(),
		Key:      "staff-management",
		Name:     "Staff Management",
		IsActive: true,
		DefaultMenuLinks: []MenuLink{
			{Name: "List", Href: "/school/features/staff/list", Icon: "users", Enabled: true},
			{Name: "Archive", Href: "/school/features/staff/archive", Icon: "box", Enabled: false},
		},
	}
}

func newFixture(features ...Feature) (*fakeCatalog, *fakeEntitlements, uuid.UUID) {
	catalog := &fakeCatalog{features: map[uuid.UUID]Feature{}}
	ents := &fakeEntitlements{
		entitlements: map[uuid.UUID][]Entitlement{},
		overrides:    map[uuid.UUID]map[uuid.UUID]MenuOverride{},
	}
	schoolId := uuid.New()
	for _, f := range features {
		catalog.features[f.Id] = f
		ents.entitlements[schoolId] = append(ents.entitlements[schoolId], Entitlement{
			SchoolId:  schoolId,
			FeatureId: f.Id,
			Enabled:   true,
		})
	}
	return catalog, ents, schoolId
}

// Scenario A: entitled feature without override resolves to the default
// links filtered to Enabled=true.
func TestResolveDefaultLinks(t *testing.T) {
	feature := staffFeature()
	catalog, ents, schoolId := newFixture(feature)

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(resolved) != 1 {
		t.Fatalf("resolved %d features, want 1", len(resolved))
	}
	want := []MenuLink{{Name: "List", Href: "/school/features/staff/list", Icon: "users", Enabled: true}}
	if !reflect.DeepEqual(resolved[0].MenuLinks, want) {
		t.Errorf("MenuLinks = %+v, want %+v", resolved[0].MenuLinks, want)
	}
}

// Scenario B: an override fully replaces the default links, never merges.
func TestResolveOverrideReplacesDefaults(t *testing.T) {
	feature := staffFeature()
	catalog, ents, schoolId := newFixture(feature)
	ents.overrides[schoolId] = map[uuid.UUID]MenuOverride{
		feature.Id: {
			SchoolId:  schoolId,
			FeatureId: feature.Id,
			MenuLinks: []MenuLink{{Name: "Custom List", Href: "/x/a", Enabled: true}},
		},
	}

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []MenuLink{{Name: "Custom List", Href: "/x/a", Enabled: true}}
	if !reflect.DeepEqual(resolved[0].MenuLinks, want) {
		t.Errorf("MenuLinks = %+v, want %+v", resolved[0].MenuLinks, want)
	}
}

func TestResolveOverrideEnabledFilter(t *testing.T) {
	feature := staffFeature()
	catalog, ents, schoolId := newFixture(feature)
	ents.overrides[schoolId] = map[uuid.UUID]MenuOverride{
		feature.Id: {
			SchoolId:  schoolId,
			FeatureId: feature.Id,
			MenuLinks: []MenuLink{
				{Name: "Visible", Href: "/x/a", Enabled: true},
				{Name: "Hidden", Href: "/x/b", Enabled: false},
			},
		},
	}

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(resolved[0].MenuLinks) != 1 || resolved[0].MenuLinks[0].Name != "Visible" {
		t.Errorf("MenuLinks = %+v, want only the enabled override link", resolved[0].MenuLinks)
	}
}

func TestResolveSkipsDisabledEntitlement(t *testing.T) {
	feature := staffFeature()
	catalog, ents, schoolId := newFixture(feature)
	ents.entitlements[schoolId][0].Enabled = false

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("resolved %d features, want 0", len(resolved))
	}
}

func TestResolveSkipsStaleEntitlement(t *testing.T) {
	feature := staffFeature()
	catalog, ents, schoolId := newFixture(feature)

	// Entitlement referencing a feature the catalog no longer has.
	ents.entitlements[schoolId] = append(ents.entitlements[schoolId], Entitlement{
		SchoolId:  schoolId,
		FeatureId: uuid.New(),
		Enabled:   true,
	})

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("stale entitlement must not fail resolution: %v", err)
	}
	if len(resolved) != 1 {
		t.Errorf("resolved %d features, want 1", len(resolved))
	}
}

func TestResolveUnknownSchool(t *testing.T) {
	catalog, ents, _ := newFixture(staffFeature())

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unknown school must not error: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("resolved %d features, want 0", len(resolved))
	}
}

func TestResolveIncludesZeroLinkFeature(t *testing.T) {
	feature := Feature{
		Id:       uuid.New(),
		Key:      "announcements",
		Name:     "Announcements",
		IsActive: true,
		DefaultMenuLinks: []MenuLink{
			{Name: "Feed", Href: "/school/features/announcements/feed", Enabled: false},
		},
	}
	catalog, ents, schoolId := newFixture(feature)

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("feature with zero effective links must still be listed")
	}
	if len(resolved[0].MenuLinks) != 0 {
		t.Errorf("MenuLinks = %+v, want empty", resolved[0].MenuLinks)
	}
}

func TestResolveOrderedByKey(t *testing.T) {
	a := staffFeature()
	b := Feature{Id: uuid.New(), Key: "timetable", Name: "Timetable", IsActive: true}
	c := Feature{Id: uuid.New(), Key: "fees", Name: "Fees", IsActive: true}
	catalog, ents, schoolId := newFixture(b, a, c)

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	keys := make([]string, 0, len(resolved))
	for _, rf := range resolved {
		keys = append(keys, rf.Feature.Key)
	}
	want := []string{"fees", "staff-management", "timetable"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("order = %v, want %v", keys, want)
	}
}

// Idempotence: two calls with unchanged data yield identical output.
func TestResolveIdempotent(t *testing.T) {
	catalog, ents, schoolId := newFixture(staffFeature(), Feature{
		Id: uuid.New(), Key: "timetable", Name: "Timetable", IsActive: true,
	})
	resolver := NewResolver(catalog, ents)

	first, err := resolver.Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), schoolId)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Resolve differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

// A store failure must propagate and never produce a partial list.
func TestResolveStoreErrorAbortsWholeCall(t *testing.T) {
	catalog, ents, schoolId := newFixture(staffFeature(), Feature{
		Id: uuid.New(), Key: "timetable", Name: "Timetable", IsActive: true,
	})
	storeErr := errors.New("connection refused")
	ents.overrideErr = storeErr

	resolved, err := NewResolver(catalog, ents).Resolve(context.Background(), schoolId)
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
	if resolved != nil {
		t.Errorf("resolved = %+v, want nil on error", resolved)
	}
}
