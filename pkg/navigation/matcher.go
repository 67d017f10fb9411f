// FILE: pkg/navigation/matcher.go
// Route matching over a resolved menu.
package navigation

import "strings"

// DefaultPageSlug is assumed when a request names a feature but no page.
const DefaultPageSlug = "dashboard"

type MatchStatus string

const (
	MatchFound MatchStatus = "found"
	// MatchFeatureNotFound: no resolved feature's slug equals the request.
	MatchFeatureNotFound MatchStatus = "feature_not_found"
	// MatchPageNotImplemented: the feature matched but no enabled link's
	// trailing path segment equals the page slug. This is a first-class
	// result (render a "coming soon" page), not an error.
	MatchPageNotImplemented MatchStatus = "page_not_implemented"
)

type MatchResult struct {
	Status   MatchStatus
	Feature  *Feature
	Link     *MenuLink
	PageSlug string
}

// Match locates the requested (featureSlug, pageSlug) pair within a
// resolved menu. Slug comparison is case-sensitive; slugs are stable
// because Slugify is applied identically on both sides.
func Match(resolved []ResolvedFeature, featureSlug, pageSlug string) MatchResult {
	if pageSlug == "" {
		pageSlug = DefaultPageSlug
	}

	for i := range resolved {
		rf := &resolved[i]
		if rf.Feature.Slug() != featureSlug {
			continue
		}
		for j := range rf.MenuLinks {
			if lastPathSegment(rf.MenuLinks[j].Href) == pageSlug {
				return MatchResult{
					Status:   MatchFound,
					Feature:  &rf.Feature,
					Link:     &rf.MenuLinks[j],
					PageSlug: pageSlug,
				}
			}
		}
		return MatchResult{
			Status:   MatchPageNotImplemented,
			Feature:  &rf.Feature,
			PageSlug: pageSlug,
		}
	}

	return MatchResult{
		Status:   MatchFeatureNotFound,
		PageSlug: pageSlug,
	}
}

func lastPathSegment(href string) string {
	href = strings.TrimRight(href, "/")
	if idx := strings.LastIndexByte(href, '/'); idx >= 0 {
		return href[idx+1:]
	}
	return href
}
