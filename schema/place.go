package schema

import (
	"fmt"
	"strings"
)

// Sentinel values used when Overpass tags do not carry the field.
const (
	AddressNotAvailable = "Address not available"
	NoDescription       = "No description available."
	PlaceholderImage    = "/placeholder.svg"
)

// PlaceCategory is the kind of place a client can search for.
type PlaceCategory string

const (
	PlaceCategoryLodge      PlaceCategory = "lodge"
	PlaceCategoryHotel      PlaceCategory = "hotel"
	PlaceCategoryRestaurant PlaceCategory = "restaurant"
	PlaceCategoryFastFood   PlaceCategory = "fast_food"
)

// AllPlaceCategories lists every supported category. The order is the order
// categories are fetched for the combined place list.
var AllPlaceCategories = []PlaceCategory{
	PlaceCategoryLodge,
	PlaceCategoryHotel,
	PlaceCategoryRestaurant,
	PlaceCategoryFastFood,
}

// ParsePlaceCategory converts a request parameter into a PlaceCategory.
func ParsePlaceCategory(value string) (PlaceCategory, error) {
	switch c := PlaceCategory(strings.ToLower(value)); c {
	case PlaceCategoryLodge, PlaceCategoryHotel, PlaceCategoryRestaurant, PlaceCategoryFastFood:
		return c, nil
	default:
		return "", fmt.Errorf("unknown place category: %s", value)
	}
}

// Place is a point of interest fetched from the POI provider. A fresh set of
// places is built on every search; enrichment never mutates a place in-place
// but returns copies with Distance set.
type Place struct {
	ID          string        `json:"id" bson:"id"`
	Name        string        `json:"name" bson:"name"`
	Category    PlaceCategory `json:"category" bson:"category"`
	Description string        `json:"description" bson:"description"`
	Address     string        `json:"address" bson:"address"`
	Location    *Location     `json:"location" bson:"location"`
	Rating      float64       `json:"rating,omitempty" bson:"rating,omitempty"`
	Image       string        `json:"image" bson:"image"`
	Distance    *float64      `json:"distance,omitempty" bson:"-"`
	IsFavorite  bool          `json:"is_favorite" bson:"-"`
}

// placeholderNames are name prefixes seen in OSM entries that are clearly
// test data and should never reach clients.
var placeholderNames = []string{"test", "sample", "demo", "fixme", "placeholder"}

// Valid reports whether a place should be returned to clients. A place must
// be named, must carry non-zero coordinates and must not look like test data.
func (p Place) Valid() bool {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return false
	}
	if p.Location == nil || (p.Location.Latitude == 0 && p.Location.Longitude == 0) {
		return false
	}

	lower := strings.ToLower(name)
	for _, prefix := range placeholderNames {
		if lower == prefix || strings.HasPrefix(lower, prefix+" ") {
			return false
		}
	}

	return true
}
