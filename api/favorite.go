package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wandermate/wandermate-api/schema"
)

// listFavorites is the API to query the places an account has saved. Saved
// places are hydrated from the account's offline snapshot when available;
// ids without a snapshot entry are still returned so clients can refetch
// them.
func (s *Server) listFavorites(c *gin.Context) {
	accountNumber := c.GetString("requester")

	ids, err := s.mongoStore.GetFavoriteIDs(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	cached, err := s.mongoStore.CachedPlaces(accountNumber)
	if err != nil {
		c.Error(err)
		cached = []schema.Place{}
	}

	saved := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		saved[id] = struct{}{}
	}

	places := make([]schema.Place, 0, len(ids))
	for _, p := range cached {
		if _, ok := saved[p.ID]; ok {
			p.IsFavorite = true
			places = append(places, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"place_ids": ids,
		"places":    places,
	})
}

// toggleFavorite is the API to save or unsave a place
func (s *Server) toggleFavorite(c *gin.Context) {
	accountNumber := c.GetString("requester")
	placeID := c.Param("placeID")

	isFavorite, err := s.mongoStore.ToggleFavorite(accountNumber, placeID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"place_id":    placeID,
		"is_favorite": isFavorite,
	})
}
