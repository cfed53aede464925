// Package search ranks providers for the customer search page.
package search

import (
	"sort"
	"strings"

	"apna/models"
	"apna/services/geo"
)

// Result is a provider annotated with its live distance. DistanceKm is nil
// when no user coordinate was available; Distance then falls back to the
// provider's static label.
type Result struct {
	Provider   models.Provider `json:"provider"`
	DistanceKm *float64        `json:"distanceKm"`
	Distance   string          `json:"distance"`
}

// Search filters and sorts providers. It is a pure function of its inputs;
// providers is not modified. Ties keep the input order.
func Search(providers []models.Provider, f Filters, userLocation *models.LatLng, favorites FavoriteSet) []Result {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.ToLower(strings.TrimSpace(f.Category))

	results := make([]Result, 0, len(providers))
	for _, p := range providers {
		r := Result{Provider: p, Distance: p.Distance}
		if userLocation != nil {
			d := geo.DistanceKm(*userLocation, p.Position())
			r.DistanceKm = &d
			r.Distance = geo.FormatDistance(d)
		}
		if !matches(r, f, query, category, favorites) {
			continue
		}
		results = append(results, r)
	}

	sortResults(results, f.Sort)
	return results
}

func matches(r Result, f Filters, query, category string, favorites FavoriteSet) bool {
	p := r.Provider

	if f.HideBlocked && p.Blocked {
		return false
	}
	if query != "" && !matchesQuery(p, query) {
		return false
	}
	if category != "" && !hasService(p, category) {
		return false
	}
	if f.MinPrice != nil && p.BasePrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.BasePrice > *f.MaxPrice {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if p.ReliabilityScore < f.MinReliability {
		return false
	}
	if f.VerifiedOnly && p.ReliabilityScore < VerifiedReliability {
		return false
	}
	if f.FastResponder && p.AcceptRate < FastResponderAccept {
		return false
	}
	if f.SavedOnly && (favorites == nil || !favorites.Has(p.ID)) {
		return false
	}
	// Without a live coordinate the distance constraint cannot be evaluated and passes.
	if f.MaxDistanceKm != nil && r.DistanceKm != nil && *r.DistanceKm > *f.MaxDistanceKm {
		return false
	}
	return true
}

func matchesQuery(p models.Provider, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	for _, s := range p.Services {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

func hasService(p models.Provider, category string) bool {
	for _, s := range p.Services {
		if strings.ToLower(s) == category {
			return true
		}
	}
	return false
}

func sortResults(results []Result, key SortKey) {
	var less func(a, b Result) bool
	switch key {
	case SortRating:
		less = func(a, b Result) bool { return a.Provider.Rating > b.Provider.Rating }
	case SortReliability:
		less = func(a, b Result) bool { return a.Provider.ReliabilityScore > b.Provider.ReliabilityScore }
	case SortPriceAsc:
		less = func(a, b Result) bool { return a.Provider.BasePrice < b.Provider.BasePrice }
	case SortPriceDesc:
		less = func(a, b Result) bool { return a.Provider.BasePrice > b.Provider.BasePrice }
	default:
		// Nearest first; unknown distances sort last.
		less = func(a, b Result) bool {
			switch {
			case a.DistanceKm == nil:
				return false
			case b.DistanceKm == nil:
				return true
			}
			return *a.DistanceKm < *b.DistanceKm
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
}
