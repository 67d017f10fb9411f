package navigation

import (
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"staff-management", "staff-management"},
		{"Staff Management", "staff-management"},
		{"timetable", "timetable"},
		{"fees_and_billing", "fees-and-billing"},
		{"Exams 2024", "exams-2024"},
		{"library!", "library-"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Slugify(tt.key)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.key, got, tt.want)
			}

			// Deterministic: the same key always derives the same slug.
			if again := Slugify(tt.key); again != got {
				t.Errorf("Slugify(%q) not deterministic: %q then %q", tt.key, got, again)
			}
		})
	}
}

func TestValidateCatalogDuplicateSlug(t *testing.T) {
	features := []Feature{
		{Key: "staff-management", IsActive: true},
		{Key: "Staff Management", IsActive: true}, // same derived slug
	}

	err := ValidateCatalog(features)
	if !errors.Is(err, ErrCatalogIntegrity) {
		t.Fatalf("expected ErrCatalogIntegrity, got %v", err)
	}
}

func TestValidateCatalogIgnoresInactive(t *testing.T) {
	features := []Feature{
		{Key: "staff-management", IsActive: true},
		{Key: "Staff Management", IsActive: false},
	}

	if err := ValidateCatalog(features); err != nil {
		t.Fatalf("inactive duplicate should not fail validation, got %v", err)
	}
}

func TestValidateCatalogDuplicateHref(t *testing.T) {
	features := []Feature{
		{
			Key:      "library",
			IsActive: true,
			DefaultMenuLinks: []MenuLink{
				{Name: "Catalog", Href: "/school/features/library/catalog", Enabled: true},
				{Name: "Browse", Href: "/school/features/library/catalog", Enabled: true},
			},
		},
	}

	err := ValidateCatalog(features)
	if !errors.Is(err, ErrCatalogIntegrity) {
		t.Fatalf("expected ErrCatalogIntegrity, got %v", err)
	}
}

func TestValidateMenuLinksOK(t *testing.T) {
	links := []MenuLink{
		{Name: "List", Href: "/school/features/staff/list", Enabled: true},
		{Name: "Archive", Href: "/school/features/staff/archive", Enabled: false},
	}

	if err := ValidateMenuLinks(links); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
