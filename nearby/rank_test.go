package nearby

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandermate/wandermate-api/schema"
)

func TestWithDistance(t *testing.T) {
	places := []schema.Place{
		place("1", "Near", schema.PlaceCategoryRestaurant, -15.39, 28.32),
		place("2", "Far", schema.PlaceCategoryRestaurant, -17.85, 25.85),
	}

	enriched := WithDistance(places, lusaka)

	assert.NotNil(t, enriched[0].Distance)
	assert.NotNil(t, enriched[1].Distance)
	assert.True(t, *enriched[0].Distance < *enriched[1].Distance)
}

func TestWithDistanceDoesNotMutateInput(t *testing.T) {
	places := []schema.Place{
		place("1", "Near", schema.PlaceCategoryRestaurant, -15.39, 28.32),
	}

	_ = WithDistance(places, lusaka)
	assert.Nil(t, places[0].Distance, "input places must stay untouched")
}

func TestWithDistanceSkipsPlacesWithoutCoordinates(t *testing.T) {
	places := []schema.Place{{ID: "1", Name: "Nowhere"}}

	enriched := WithDistance(places, lusaka)
	assert.Nil(t, enriched[0].Distance)
}

func TestSortByDistanceMissingDistanceLast(t *testing.T) {
	d1, d2 := 12.0, 3.0
	places := []schema.Place{
		{ID: "a", Name: "A", Distance: &d1},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C", Distance: &d2},
	}

	sorted := SortByDistance(places)

	assert.Equal(t, "c", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
	assert.Equal(t, "b", sorted[2].ID, "place without distance sorts last")
}

func TestSortByDistanceStable(t *testing.T) {
	d := 5.0
	places := []schema.Place{
		{ID: "first", Distance: &d},
		{ID: "second", Distance: &d},
	}

	sorted := SortByDistance(places)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestSortByRating(t *testing.T) {
	places := []schema.Place{
		{ID: "a", Rating: 3.2},
		{ID: "b", Rating: 4.8},
		{ID: "c", Rating: 4.1},
	}

	sorted := SortByRating(places)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "c", sorted[1].ID)
	assert.Equal(t, "a", sorted[2].ID)
	// input order untouched
	assert.Equal(t, "a", places[0].ID)
}

func TestNearestFiltersAndLimits(t *testing.T) {
	places := []schema.Place{
		place("1", "Grill", schema.PlaceCategoryRestaurant, -15.39, 28.32),
		place("2", "Lodge", schema.PlaceCategoryLodge, -15.40, 28.31),
		place("3", "Cafe", schema.PlaceCategoryRestaurant, -15.45, 28.28),
		place("4", "Diner", schema.PlaceCategoryRestaurant, -16.80, 27.00),
	}

	nearest := Nearest(places, lusaka, schema.PlaceCategoryRestaurant, 2)

	assert.Len(t, nearest, 2)
	assert.Equal(t, "1", nearest[0].ID)
	assert.Equal(t, "3", nearest[1].ID)
}

func TestNearestDefaultLimit(t *testing.T) {
	places := []schema.Place{
		place("1", "A", schema.PlaceCategoryRestaurant, -15.39, 28.32),
		place("2", "B", schema.PlaceCategoryRestaurant, -15.40, 28.31),
		place("3", "C", schema.PlaceCategoryRestaurant, -15.41, 28.30),
		place("4", "D", schema.PlaceCategoryRestaurant, -15.42, 28.29),
	}

	nearest := Nearest(places, lusaka, "", 0)
	assert.Len(t, nearest, DefaultNearestLimit)
}
