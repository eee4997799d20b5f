package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wandermate/wandermate-api/geo"
	"github.com/wandermate/wandermate-api/schema"
)

const (
	// DefaultURL is the public Overpass API interpreter endpoint.
	DefaultURL = "https://overpass-api.de/api/interpreter"

	logPrefix      = "overpass"
	attemptTimeout = 15 * time.Second
	maxAttempts    = 3
)

// Client queries the Overpass POI API for places of a category around a
// center point. Search never fails from the caller's point of view: provider
// errors are retried and then degrade to an empty result set.
type Client interface {
	Search(ctx context.Context, center schema.Location, category schema.PlaceCategory, radiusMeters int) []schema.Place
}

type client struct {
	url              string
	httpClient       *http.Client
	bounds           geo.Bounds
	syntheticRatings bool

	// overridable in tests
	backoff func(attempt int) time.Duration
	rnd     func() float64
}

// New returns an Overpass client. An empty url selects the public endpoint.
// When syntheticRatings is set, places whose tags carry no usable rating get
// a filler value in [3.5, 4.8]; otherwise the rating is left empty.
func New(url string, httpClient *http.Client, syntheticRatings bool) Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &client{
		url:              url,
		httpClient:       httpClient,
		bounds:           geo.ZambiaBounds,
		syntheticRatings: syntheticRatings,
		backoff:          linearBackoff,
		rnd:              rand.Float64,
	}
}

// linearBackoff waits 1s, 2s, 3s between attempts.
func linearBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

type element struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type response struct {
	Elements []element `json:"elements"`
}

// selector is a single Overpass tag predicate.
type selector struct {
	key   string
	value string
}

func categorySelectors(category schema.PlaceCategory) []selector {
	switch category {
	case schema.PlaceCategoryLodge:
		return []selector{
			{"tourism", "guest_house"},
			{"tourism", "hostel"},
			{"tourism", "resort"},
			{"tourism", "chalet"},
		}
	case schema.PlaceCategoryHotel:
		return []selector{{"tourism", "hotel"}}
	case schema.PlaceCategoryRestaurant:
		return []selector{
			{"amenity", "restaurant"},
			{"amenity", "cafe"},
		}
	case schema.PlaceCategoryFastFood:
		return []selector{{"amenity", "fast_food"}}
	default:
		return nil
	}
}

func buildQuery(center schema.Location, category schema.PlaceCategory, radiusMeters int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:15];\n(\n")
	for _, s := range categorySelectors(category) {
		fmt.Fprintf(&b, "  node(around:%d,%f,%f)[%q=%q];\n",
			radiusMeters, center.Latitude, center.Longitude, s.key, s.value)
	}
	b.WriteString(");\nout body;\n")
	return b.String()
}

func (c *client) Search(ctx context.Context, center schema.Location, category schema.PlaceCategory, radiusMeters int) []schema.Place {
	logger := log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"category": category,
		"radius":   radiusMeters,
	})

	query := buildQuery(center, category, radiusMeters)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		elements, err := c.post(ctx, query)
		if err == nil {
			return c.normalizeAll(elements, category)
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}
		select {
		case <-time.After(c.backoff(attempt)):
		case <-ctx.Done():
			logger.WithError(ctx.Err()).Warn("search abandoned")
			return []schema.Place{}
		}
	}

	logger.WithError(lastErr).Error("overpass search failed")
	return []schema.Place{}
}

func (c *client) post(ctx context.Context, query string) ([]element, error) {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, err
	}

	return r.Elements, nil
}

func (c *client) normalizeAll(elements []element, requested schema.PlaceCategory) []schema.Place {
	places := make([]schema.Place, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))

	for _, el := range elements {
		place, ok := c.normalize(el, requested)
		if !ok {
			continue
		}
		if _, dup := seen[place.ID]; dup {
			continue
		}
		seen[place.ID] = struct{}{}
		places = append(places, place)
	}

	return places
}

func (c *client) normalize(el element, requested schema.PlaceCategory) (schema.Place, bool) {
	loc := schema.Location{Latitude: el.Lat, Longitude: el.Lon}
	if !c.bounds.Contains(loc) {
		return schema.Place{}, false
	}

	place := schema.Place{
		ID:          strconv.FormatInt(el.ID, 10),
		Name:        el.Tags["name"],
		Category:    categoryFromTags(el.Tags, requested),
		Description: description(el.Tags),
		Address:     address(el.Tags),
		Location:    &loc,
		Image:       image(el.Tags),
	}

	if rating, ok := tagRating(el.Tags); ok {
		place.Rating = rating
	} else if c.syntheticRatings {
		place.Rating = 3.5 + 1.3*c.rnd()
	}

	if !place.Valid() {
		return schema.Place{}, false
	}

	return place, true
}

// categoryFromTags maps an element back onto a category. An element found
// by a lodge query may carry any of the lodging tourism tags; anything
// unrecognized keeps the requested category.
func categoryFromTags(tags map[string]string, requested schema.PlaceCategory) schema.PlaceCategory {
	switch tags["tourism"] {
	case "hotel":
		return schema.PlaceCategoryHotel
	case "guest_house", "hostel", "resort", "chalet":
		return schema.PlaceCategoryLodge
	}

	switch tags["amenity"] {
	case "restaurant", "cafe":
		return schema.PlaceCategoryRestaurant
	case "fast_food":
		return schema.PlaceCategoryFastFood
	}

	return requested
}

func address(tags map[string]string) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{"addr:street", "addr:city", "addr:district"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return schema.AddressNotAvailable
	}
	return strings.Join(parts, ", ")
}

func description(tags map[string]string) string {
	if d := tags["description"]; d != "" {
		return d
	}
	return schema.NoDescription
}

func image(tags map[string]string) string {
	if img := tags["image"]; img != "" {
		return img
	}
	if img := tags["photo"]; img != "" {
		return img
	}
	return schema.PlaceholderImage
}

func tagRating(tags map[string]string) (float64, bool) {
	for _, key := range []string{"stars", "rating"} {
		v, ok := tags[key]
		if !ok {
			continue
		}
		rating, err := strconv.ParseFloat(v, 64)
		if err == nil && rating >= 0 && rating <= 5 {
			return rating, true
		}
	}
	return 0, false
}
