package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeoPosition(t *testing.T) {
	lat, long, err := parseGeoPosition("-15.3875;28.3228")
	assert.NoError(t, err)
	assert.Equal(t, -15.3875, lat)
	assert.Equal(t, 28.3228, long)
}

func TestParseGeoPositionInvalid(t *testing.T) {
	testCases := []string{
		"",
		"-15.3875",
		"-15.3875;28.3228;0",
		"abc;28.3228",
		"-15.3875;xyz",
	}

	for _, tc := range testCases {
		_, _, err := parseGeoPosition(tc)
		assert.Error(t, err, tc)
	}
}
