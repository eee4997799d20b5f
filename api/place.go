package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/wandermate/wandermate-api/geo"
	"github.com/wandermate/wandermate-api/nearby"
	"github.com/wandermate/wandermate-api/schema"
	"github.com/wandermate/wandermate-api/utils"
)

// placeNotice localizes a banner explaining degraded or re-anchored
// results. It is empty on the happy path.
func placeNotice(c *gin.Context, fromSnapshot bool, position schema.Location) string {
	var messageID string
	switch {
	case fromSnapshot:
		messageID = "OfflineSnapshotNotice"
	case position == geo.LusakaAnchor:
		messageID = "OutsideRegionNotice"
	default:
		return ""
	}

	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	notice, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		c.Error(err)
		return ""
	}
	return notice
}

// snapshotFallback serves the account's cached place list when a live
// fetch came back empty. An optional category narrows the cached list.
func (s *Server) snapshotFallback(c *gin.Context, accountNumber string, category schema.PlaceCategory) []schema.Place {
	cached, err := s.mongoStore.CachedPlaces(accountNumber)
	if err != nil {
		c.Error(err)
		return nil
	}

	if category == "" {
		return cached
	}

	filtered := make([]schema.Place, 0, len(cached))
	for _, p := range cached {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// nearbyPlaces is the API to search places of one category around the
// current position. It never fails on provider errors: an empty list with
// a notice is the degraded answer.
func (s *Server) nearbyPlaces(c *gin.Context) {
	accountNumber := c.GetString("requester")

	category, err := schema.ParsePlaceCategory(c.Query("category"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPlaceCategory)
		return
	}

	position := s.currentPosition(c)

	places := s.finder.FetchNearby(c.Request.Context(), position, category)

	fromSnapshot := false
	if len(places) == 0 {
		if cached := s.snapshotFallback(c, accountNumber, category); len(cached) > 0 {
			places = cached
			fromSnapshot = true
		}
	}

	if withFavorites, err := s.mongoStore.ApplyFavorites(accountNumber, places); err == nil {
		places = withFavorites
	} else {
		c.Error(err)
	}

	places = nearby.SortByDistance(nearby.WithDistance(places, position))

	c.JSON(http.StatusOK, gin.H{
		"places": places,
		"notice": placeNotice(c, fromSnapshot, position),
	})
}

// listPlaces is the API to fetch places of every category around the
// current position, with optional text filtering and sorting. A
// successful fetch refreshes the account's offline snapshot.
func (s *Server) listPlaces(c *gin.Context) {
	accountNumber := c.GetString("requester")
	position := s.currentPosition(c)

	places := s.finder.FetchAll(c.Request.Context(), position)

	fromSnapshot := false
	if len(places) == 0 {
		if cached := s.snapshotFallback(c, accountNumber, ""); len(cached) > 0 {
			places = cached
			fromSnapshot = true
		}
	} else {
		if err := s.mongoStore.CachePlaces(accountNumber, places); err != nil {
			c.Error(err)
		}
	}

	if withFavorites, err := s.mongoStore.ApplyFavorites(accountNumber, places); err == nil {
		places = withFavorites
	} else {
		c.Error(err)
	}

	places = nearby.WithDistance(places, position)

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := make([]schema.Place, 0, len(places))
		for _, p := range places {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Address), q) {
				filtered = append(filtered, p)
			}
		}
		places = filtered
	}

	switch c.DefaultQuery("sort", "distance") {
	case "rating":
		places = nearby.SortByRating(places)
	default:
		places = nearby.SortByDistance(places)
	}

	c.JSON(http.StatusOK, gin.H{
		"places": places,
		"notice": placeNotice(c, fromSnapshot, position),
	})
}

// nearestPlaces is the API to fetch the closest places to the current
// position, optionally restricted to one category.
func (s *Server) nearestPlaces(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var category schema.PlaceCategory
	if q := c.Query("category"); q != "" {
		parsed, err := schema.ParsePlaceCategory(q)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownPlaceCategory)
			return
		}
		category = parsed
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(nearby.DefaultNearestLimit)))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	position := s.currentPosition(c)

	var places []schema.Place
	if category != "" {
		places = s.finder.FetchNearby(c.Request.Context(), position, category)
	} else {
		places = s.finder.FetchAll(c.Request.Context(), position)
	}

	fromSnapshot := false
	if len(places) == 0 {
		if cached := s.snapshotFallback(c, accountNumber, category); len(cached) > 0 {
			places = cached
			fromSnapshot = true
		}
	}

	nearest := nearby.Nearest(places, position, category, limit)

	if withFavorites, err := s.mongoStore.ApplyFavorites(accountNumber, nearest); err == nil {
		nearest = withFavorites
	} else {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"places": nearest,
		"notice": placeNotice(c, fromSnapshot, position),
	})
}
