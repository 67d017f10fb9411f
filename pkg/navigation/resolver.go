// FILE: pkg/navigation/resolver.go
// Resolver combines a school's entitlements with its menu overrides into
// a single ordered, filtered menu tree.
package navigation

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type Resolver struct {
	catalog      CatalogStore
	entitlements EntitlementStore
}

func NewResolver(catalog CatalogStore, entitlements EntitlementStore) *Resolver {
	return &Resolver{
		catalog:      catalog,
		entitlements: entitlements,
	}
}

// Resolve builds the effective menu for one school:
//  1. enabled entitlements only,
//  2. stale entitlements (feature gone from the catalog) skipped silently,
//  3. override links when present, defaults otherwise (full replacement),
//  4. links filtered to Enabled=true with original order preserved,
//  5. output sorted by feature key ascending for render stability.
//
// Feature and override reads for the entitled set run concurrently. Any
// store error aborts the whole call; a partial list is never returned.
// An unknown school id yields an empty list, not an error.
func (r *Resolver) Resolve(ctx context.Context, schoolId uuid.UUID) ([]ResolvedFeature, error) {
	ents, err := r.entitlements.ListEntitlements(ctx, schoolId)
	if err != nil {
		return nil, err
	}

	enabled := make([]Entitlement, 0, len(ents))
	for _, ent := range ents {
		if ent.Enabled {
			enabled = append(enabled, ent)
		}
	}
	if len(enabled) == 0 {
		return []ResolvedFeature{}, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	results := make([]*ResolvedFeature, len(enabled))

	for i, ent := range enabled {
		wg.Add(1)
		go func(i int, ent Entitlement) {
			defer wg.Done()

			feature, err := r.catalog.GetFeature(ctx, ent.FeatureId)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			if feature == nil || !feature.IsActive {
				// Stale entitlement: catalog and entitlement stores are
				// not transactionally coupled, so skip without failing.
				return
			}

			override, err := r.entitlements.GetOverride(ctx, schoolId, ent.FeatureId)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			links := feature.DefaultMenuLinks
			if override != nil {
				links = override.MenuLinks
			}

			results[i] = &ResolvedFeature{
				Feature:   *feature,
				MenuLinks: enabledLinks(links),
			}
		}(i, ent)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved := make([]ResolvedFeature, 0, len(results))
	for _, res := range results {
		if res != nil {
			resolved = append(resolved, *res)
		}
	}

	sort.SliceStable(resolved, func(a, b int) bool {
		return resolved[a].Feature.Key < resolved[b].Feature.Key
	})

	return resolved, nil
}

// enabledLinks filters to Enabled=true without reordering. A feature with
// zero effective links is still listed by the caller.
func enabledLinks(links []MenuLink) []MenuLink {
	out := make([]MenuLink, 0, len(links))
	for _, link := range links {
		if link.Enabled {
			out = append(out, link)
		}
	}
	return out
}
