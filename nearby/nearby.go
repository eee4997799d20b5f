package nearby

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wandermate/wandermate-api/external/geoinfo"
	"github.com/wandermate/wandermate-api/external/overpass"
	"github.com/wandermate/wandermate-api/schema"
)

const logPrefix = "nearby"

// radiusProfile holds the initial and ceiling search radii in meters for a
// category. Sparse categories (lodging) start far wider than dense ones.
type radiusProfile struct {
	initial int
	ceiling int
}

var radiusProfiles = map[schema.PlaceCategory]radiusProfile{
	schema.PlaceCategoryLodge:      {initial: 150000, ceiling: 300000},
	schema.PlaceCategoryHotel:      {initial: 150000, ceiling: 300000},
	schema.PlaceCategoryRestaurant: {initial: 10000, ceiling: 50000},
	schema.PlaceCategoryFastFood:   {initial: 5000, ceiling: 50000},
}

var defaultRadiusProfile = radiusProfile{initial: 20000, ceiling: 100000}

func profileFor(category schema.PlaceCategory) radiusProfile {
	if p, ok := radiusProfiles[category]; ok {
		return p
	}
	return defaultRadiusProfile
}

// widened returns the radii to try in order: the initial radius, double the
// initial, then the ceiling. Steps beyond the ceiling collapse into it, so a
// category whose doubled radius already hits the ceiling is queried twice,
// not three times.
func (p radiusProfile) widened() []int {
	radii := []int{p.initial}
	for _, r := range []int{p.initial * 2, p.ceiling} {
		if r > p.ceiling {
			r = p.ceiling
		}
		if r > radii[len(radii)-1] {
			radii = append(radii, r)
		}
	}
	return radii
}

// Finder fetches nearby places, widening the search radius until something
// is found or the category ceiling is reached. An empty result after the
// ceiling is a valid outcome, not an error.
type Finder struct {
	source    overpass.Client
	geoClient geoinfo.GeoInfo
}

// NewFinder returns a finder on top of a place search client. geoClient may
// be nil; it is only used to backfill addresses the provider did not carry.
func NewFinder(source overpass.Client, geoClient geoinfo.GeoInfo) *Finder {
	return &Finder{
		source:    source,
		geoClient: geoClient,
	}
}

// FetchNearby searches for places of a category around a center point.
func (f *Finder) FetchNearby(ctx context.Context, center schema.Location, category schema.PlaceCategory) []schema.Place {
	var places []schema.Place
	for _, radius := range profileFor(category).widened() {
		places = f.source.Search(ctx, center, category, radius)
		if len(places) > 0 {
			break
		}
	}

	return f.backfillAddresses(places)
}

// FetchAll runs one FetchNearby per category concurrently and merges the
// results, deduplicated by place id. A category that fails or comes back
// empty contributes nothing; the join always completes.
func (f *Finder) FetchAll(ctx context.Context, center schema.Location, categories ...schema.PlaceCategory) []schema.Place {
	if len(categories) == 0 {
		categories = schema.AllPlaceCategories
	}

	var (
		mu     sync.Mutex
		merged []schema.Place
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, category := range categories {
		category := category
		g.Go(func() error {
			places := f.FetchNearby(ctx, center, category)

			mu.Lock()
			merged = append(merged, places...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{}, len(merged))
	result := make([]schema.Place, 0, len(merged))
	for _, p := range merged {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		result = append(result, p)
	}

	return result
}

// backfillAddresses replaces the address sentinel with a reverse-geocoded
// address where possible. Best effort: a geocoding failure keeps the
// sentinel.
func (f *Finder) backfillAddresses(places []schema.Place) []schema.Place {
	if f.geoClient == nil {
		return places
	}

	for i, p := range places {
		if p.Address != schema.AddressNotAvailable || p.Location == nil {
			continue
		}

		address, err := f.geoClient.FormattedAddress(*p.Location)
		if err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Debug("address backfill failed")
			continue
		}
		places[i].Address = address
	}

	return places
}
