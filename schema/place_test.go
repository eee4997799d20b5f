package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlaceCategory(t *testing.T) {
	category, err := ParsePlaceCategory("lodge")
	assert.NoError(t, err)
	assert.Equal(t, PlaceCategoryLodge, category)

	category, err = ParsePlaceCategory("fast_food")
	assert.NoError(t, err)
	assert.Equal(t, PlaceCategoryFastFood, category)

	_, err = ParsePlaceCategory("museum")
	assert.Error(t, err)

	_, err = ParsePlaceCategory("")
	assert.Error(t, err)
}

func TestPlaceValid(t *testing.T) {
	p := Place{
		ID:       "node/1",
		Name:     "Latitude 15",
		Category: PlaceCategoryHotel,
		Location: &Location{Latitude: -15.4, Longitude: 28.3},
	}
	assert.True(t, p.Valid())
}

func TestPlaceValidRejectsMissingName(t *testing.T) {
	p := Place{
		ID:       "node/2",
		Location: &Location{Latitude: -15.4, Longitude: 28.3},
	}
	assert.False(t, p.Valid())
}

func TestPlaceValidRejectsMissingLocation(t *testing.T) {
	p := Place{
		ID:   "node/3",
		Name: "Latitude 15",
	}
	assert.False(t, p.Valid())

	p.Location = &Location{}
	assert.False(t, p.Valid())
}

func TestPlaceValidRejectsPlaceholderNames(t *testing.T) {
	for _, name := range []string{"Test Node", "test node 3", "Sample Cafe", "demo", "FIXME"} {
		p := Place{
			ID:       "node/4",
			Name:     name,
			Location: &Location{Latitude: -15.4, Longitude: 28.3},
		}
		assert.False(t, p.Valid(), name)
	}
}
