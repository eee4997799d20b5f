package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/wandermate/wandermate-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoAddressFound = fmt.Errorf("no address found")

// GeoInfo - interface to reverse geocode a location into a readable address
type GeoInfo interface {
	FormattedAddress(schema.Location) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) FormattedAddress(loc schema.Location) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("reverse geocode")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if err != nil {
		return "", err
	}

	if len(results) == 0 || results[0].FormattedAddress == "" {
		return "", ErrNoAddressFound
	}

	return results[0].FormattedAddress, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
