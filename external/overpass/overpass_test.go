package overpass

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wandermate/wandermate-api/geo"
	"github.com/wandermate/wandermate-api/schema"
)

var lusaka = schema.Location{Latitude: -15.3875, Longitude: 28.3228}

func testClient(url string, syntheticRatings bool) *client {
	return &client{
		url:              url,
		httpClient:       &http.Client{},
		bounds:           geo.ZambiaBounds,
		syntheticRatings: syntheticRatings,
		backoff:          func(int) time.Duration { return 0 },
		rnd:              rand.Float64,
	}
}

const sampleResponse = `{
  "elements": [
    {
      "id": 101,
      "lat": -15.39,
      "lon": 28.32,
      "tags": {
        "name": "Mosi Grill",
        "amenity": "restaurant",
        "addr:street": "Cairo Road",
        "addr:city": "Lusaka",
        "stars": "4.5"
      }
    },
    {
      "id": 102,
      "lat": -15.41,
      "lon": 28.30,
      "tags": {"name": "Kafue Kitchen", "amenity": "restaurant"}
    },
    {
      "id": 103,
      "lat": -15.40,
      "lon": 28.31,
      "tags": {"amenity": "restaurant"}
    },
    {
      "id": 104,
      "lat": -1.29,
      "lon": 36.82,
      "tags": {"name": "Nairobi Bites", "amenity": "restaurant"}
    }
  ]
}`

func TestSearchNormalizesAndFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleResponse)
	}))
	defer server.Close()

	c := testClient(server.URL, true)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryRestaurant, 10000)

	assert.Len(t, places, 2, "unnamed and out-of-region elements must be dropped")

	first := places[0]
	assert.Equal(t, "101", first.ID)
	assert.Equal(t, "Mosi Grill", first.Name)
	assert.Equal(t, schema.PlaceCategoryRestaurant, first.Category)
	assert.Equal(t, "Cairo Road, Lusaka", first.Address)
	assert.Equal(t, 4.5, first.Rating)
	assert.Equal(t, schema.NoDescription, first.Description)
	assert.Equal(t, schema.PlaceholderImage, first.Image)

	second := places[1]
	assert.Equal(t, schema.AddressNotAvailable, second.Address)
	assert.True(t, second.Rating >= 3.5 && second.Rating <= 4.8,
		"synthesized rating out of range: %f", second.Rating)
}

func TestSearchWithoutSyntheticRatings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleResponse)
	}))
	defer server.Close()

	c := testClient(server.URL, false)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryRestaurant, 10000)

	assert.Len(t, places, 2)
	assert.Equal(t, 4.5, places[0].Rating)
	assert.Equal(t, float64(0), places[1].Rating)
}

func TestSearchRetriesOnServerError(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, sampleResponse)
	}))
	defer server.Close()

	c := testClient(server.URL, true)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryRestaurant, 10000)

	assert.Equal(t, 3, attempts)
	assert.Len(t, places, 2)
}

func TestSearchExhaustedRetriesReturnsEmpty(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := testClient(server.URL, true)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryRestaurant, 10000)

	assert.Equal(t, 3, attempts)
	assert.NotNil(t, places)
	assert.Len(t, places, 0)
}

func TestSearchMalformedResponseReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"elements": [`)
	}))
	defer server.Close()

	c := testClient(server.URL, true)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryRestaurant, 10000)
	assert.Len(t, places, 0)
}

func TestSearchDropsPlaceholderNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"elements": [
			{"id": 1, "lat": -15.39, "lon": 28.32, "tags": {"name": "Test Node", "amenity": "restaurant"}},
			{"id": 2, "lat": -15.39, "lon": 28.32, "tags": {"name": "Chilenje Cafe", "amenity": "cafe"}}
		]}`)
	}))
	defer server.Close()

	c := testClient(server.URL, true)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryRestaurant, 10000)

	assert.Len(t, places, 1)
	assert.Equal(t, "Chilenje Cafe", places[0].Name)
}

func TestSearchDeduplicatesByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"elements": [
			{"id": 7, "lat": -15.39, "lon": 28.32, "tags": {"name": "Twin Palms", "tourism": "guest_house"}},
			{"id": 7, "lat": -15.39, "lon": 28.32, "tags": {"name": "Twin Palms", "tourism": "guest_house"}}
		]}`)
	}))
	defer server.Close()

	c := testClient(server.URL, true)
	places := c.Search(context.Background(), lusaka, schema.PlaceCategoryLodge, 150000)
	assert.Len(t, places, 1)
}

func TestBuildQueryLodgeSelectors(t *testing.T) {
	query := buildQuery(lusaka, schema.PlaceCategoryLodge, 150000)

	assert.Contains(t, query, "[out:json]")
	assert.Contains(t, query, `"tourism"="guest_house"`)
	assert.Contains(t, query, `"tourism"="hostel"`)
	assert.Contains(t, query, `"tourism"="resort"`)
	assert.Contains(t, query, "around:150000")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(query), "out body;"))
}

func TestCategoryFromTags(t *testing.T) {
	assert.Equal(t, schema.PlaceCategoryHotel,
		categoryFromTags(map[string]string{"tourism": "hotel"}, schema.PlaceCategoryLodge))
	assert.Equal(t, schema.PlaceCategoryLodge,
		categoryFromTags(map[string]string{"tourism": "hostel"}, schema.PlaceCategoryLodge))
	assert.Equal(t, schema.PlaceCategoryFastFood,
		categoryFromTags(map[string]string{"amenity": "fast_food"}, schema.PlaceCategoryFastFood))
	assert.Equal(t, schema.PlaceCategoryRestaurant,
		categoryFromTags(map[string]string{}, schema.PlaceCategoryRestaurant))
}

func TestTagRating(t *testing.T) {
	rating, ok := tagRating(map[string]string{"stars": "4"})
	assert.True(t, ok)
	assert.Equal(t, float64(4), rating)

	_, ok = tagRating(map[string]string{"stars": "11"})
	assert.False(t, ok)

	_, ok = tagRating(map[string]string{"stars": "four"})
	assert.False(t, ok)

	_, ok = tagRating(map[string]string{})
	assert.False(t, ok)
}
