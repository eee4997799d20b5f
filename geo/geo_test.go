package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandermate/wandermate-api/schema"
)

var (
	lusaka  = schema.Location{Latitude: -15.3875, Longitude: 28.3228}
	nairobi = schema.Location{Latitude: -1.2921, Longitude: 36.8219}
)

func TestDistanceSamePoint(t *testing.T) {
	assert.Equal(t, float64(0), Distance(lusaka, lusaka))
}

func TestDistanceSymmetric(t *testing.T) {
	assert.Equal(t, Distance(lusaka, nairobi), Distance(nairobi, lusaka))
}

func TestDistanceOneDegreeOfLatitude(t *testing.T) {
	a := schema.Location{Latitude: -15, Longitude: 28}
	b := schema.Location{Latitude: -16, Longitude: 28}

	// one degree of latitude is roughly 111.2 km
	assert.InEpsilon(t, 111.2, Distance(a, b), 0.01)
}

func TestDistanceAlwaysPositive(t *testing.T) {
	assert.True(t, Distance(nairobi, lusaka) > 0)
}

func TestZambiaBounds(t *testing.T) {
	assert.True(t, ZambiaBounds.Contains(lusaka))
	assert.False(t, ZambiaBounds.Contains(nairobi))
	assert.False(t, ZambiaBounds.Contains(schema.Location{}))
}

func TestZambiaBoundsEdges(t *testing.T) {
	assert.True(t, ZambiaBounds.Contains(schema.Location{Latitude: -18, Longitude: 22}))
	assert.True(t, ZambiaBounds.Contains(schema.Location{Latitude: -8, Longitude: 34}))
	assert.False(t, ZambiaBounds.Contains(schema.Location{Latitude: -18.01, Longitude: 28}))
}
