package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wandermate/wandermate-api/geo"
	"github.com/wandermate/wandermate-api/schema"
	"github.com/wandermate/wandermate-api/store"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {

		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {

		return 0, 0, err
	}

	return lat, long, nil
}

// updateGeoPositionMiddleware is a middleware to store geo-position for every
// api requests from users
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	accountNumber := c.GetString("requester")

	if gp != "" && accountNumber != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			if err := s.store.UpdateAccountGeoPosition(accountNumber, lat, long); err != nil {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}

var errNoReportedPosition = fmt.Errorf("account has no reported position")

// accountPositionSource exposes the last position an account reported
// through the Geo-Position header.
type accountPositionSource struct {
	store         store.WanderCore
	accountNumber string
}

func (s accountPositionSource) Current(ctx context.Context) (schema.Location, error) {
	account, err := s.store.GetAccount(s.accountNumber)
	if err != nil {
		return schema.Location{}, err
	}

	loc := account.Profile.State.LastLocation
	if loc == nil {
		return schema.Location{}, errNoReportedPosition
	}

	return *loc, nil
}

// resolverFor returns the position resolver for an account, creating one
// on first use.
func (s *Server) resolverFor(accountNumber string) *geo.Resolver {
	if r, ok := s.resolvers.Load(accountNumber); ok {
		return r.(*geo.Resolver)
	}

	r, _ := s.resolvers.LoadOrStore(accountNumber, geo.NewResolver(accountPositionSource{
		store:         s.store,
		accountNumber: accountNumber,
	}))
	return r.(*geo.Resolver)
}

// currentPosition determines the position a place query should be anchored
// on. An explicit lat/lng pair in the query string wins over the resolved
// account position; positions outside the served region snap to the
// region anchor.
func (s *Server) currentPosition(c *gin.Context) schema.Location {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			loc := schema.Location{Latitude: lat, Longitude: lng}
			if geo.ZambiaBounds.Contains(loc) {
				return loc
			}
			return geo.LusakaAnchor
		}
	}

	return s.resolverFor(c.GetString("requester")).Resolve(c.Request.Context())
}
