package geo

import (
	"math"

	"github.com/wandermate/wandermate-api/schema"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// Bounds is an axis-aligned latitude/longitude rectangle.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// ZambiaBounds is the region the product supports. Coordinates outside it
// fall back to the Lusaka anchor.
var ZambiaBounds = Bounds{
	MinLat: -18,
	MaxLat: -8,
	MinLon: 22,
	MaxLon: 34,
}

// LusakaAnchor is the fixed fallback position used whenever a real position
// is unavailable or out of region.
var LusakaAnchor = schema.Location{
	Latitude:  -15.3875,
	Longitude: 28.3228,
}

// Contains reports whether a location falls inside the bounds.
func (b Bounds) Contains(loc schema.Location) bool {
	return loc.Latitude >= b.MinLat && loc.Latitude <= b.MaxLat &&
		loc.Longitude >= b.MinLon && loc.Longitude <= b.MaxLon
}

// Distance returns the great-circle distance between two locations in
// kilometers, computed with the Haversine formula.
func Distance(a, b schema.Location) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
