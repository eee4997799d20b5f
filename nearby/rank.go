package nearby

import (
	"sort"

	"github.com/wandermate/wandermate-api/geo"
	"github.com/wandermate/wandermate-api/schema"
)

// missingDistanceSentinel sorts places without a computed distance last.
// The value mirrors what clients already treat as "unknown distance".
const missingDistanceSentinel = 999

// DefaultNearestLimit is how many places Nearest returns when no limit is
// given.
const DefaultNearestLimit = 3

// WithDistance returns a copy of places with Distance computed from the
// user's position. Places without coordinates pass through unchanged. The
// input slice and its elements are never mutated.
func WithDistance(places []schema.Place, user schema.Location) []schema.Place {
	result := make([]schema.Place, len(places))
	for i, p := range places {
		if p.Location != nil {
			d := geo.Distance(user, *p.Location)
			p.Distance = &d
		}
		result[i] = p
	}
	return result
}

func distanceOrSentinel(p schema.Place) float64 {
	if p.Distance == nil {
		return missingDistanceSentinel
	}
	return *p.Distance
}

// SortByDistance returns places sorted ascending by distance, stable, with
// places lacking a distance last.
func SortByDistance(places []schema.Place) []schema.Place {
	result := make([]schema.Place, len(places))
	copy(result, places)
	sort.SliceStable(result, func(i, j int) bool {
		return distanceOrSentinel(result[i]) < distanceOrSentinel(result[j])
	})
	return result
}

// SortByRating returns places sorted descending by rating, stable.
func SortByRating(places []schema.Place) []schema.Place {
	result := make([]schema.Place, len(places))
	copy(result, places)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rating > result[j].Rating
	})
	return result
}

// Nearest returns up to limit places closest to the user, optionally
// restricted to one category. An empty category keeps every place.
func Nearest(places []schema.Place, user schema.Location, category schema.PlaceCategory, limit int) []schema.Place {
	if limit <= 0 {
		limit = DefaultNearestLimit
	}

	filtered := places
	if category != "" {
		filtered = make([]schema.Place, 0, len(places))
		for _, p := range places {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
	}

	sorted := SortByDistance(WithDistance(filtered, user))
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
