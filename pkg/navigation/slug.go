// FILE: pkg/navigation/slug.go
// Slug derivation and catalog integrity checks.
package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCatalogIntegrity marks configuration errors (duplicate slugs or
// duplicate hrefs) that must be surfaced to the platform operator and
// never silently repaired.
var ErrCatalogIntegrity = errors.New("catalog integrity violation")

// Slugify lowercases the key and replaces every rune outside [a-z0-9]
// with '-'. The derivation is deterministic so that slugs computed at
// authoring time and at request time always agree.
func Slugify(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToLower(key) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ValidateMenuLinks checks that hrefs within one link list are unique.
func ValidateMenuLinks(links []MenuLink) error {
	seen := make(map[string]string, len(links))
	for _, link := range links {
		if prev, ok := seen[link.Href]; ok {
			return fmt.Errorf("%w: href %q used by both %q and %q", ErrCatalogIntegrity, link.Href, prev, link.Name)
		}
		seen[link.Href] = link.Name
	}
	return nil
}

// ValidateCatalog checks the whole active catalog: derived slugs must be
// unique across active features, and every default link list must have
// unique hrefs. Violations are fatal at catalog-load time.
func ValidateCatalog(features []Feature) error {
	slugs := make(map[string]string, len(features))
	for _, f := range features {
		if !f.IsActive {
			continue
		}
		slug := f.Slug()
		if prev, ok := slugs[slug]; ok {
			return fmt.Errorf("%w: keys %q and %q both derive slug %q", ErrCatalogIntegrity, prev, f.Key, slug)
		}
		slugs[slug] = f.Key

		if err := ValidateMenuLinks(f.DefaultMenuLinks); err != nil {
			return fmt.Errorf("feature %q: %w", f.Key, err)
		}
	}
	return nil
}
