package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wandermate/wandermate-api/store"
)

const defaultReviewLimit = 50

// listReviews is the API to query the reviews of a place
func (s *Server) listReviews(c *gin.Context) {
	placeID := c.Query("place_id")
	if placeID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultReviewLimit)), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	reviews, err := s.mongoStore.ListReviews(placeID, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
	})
}

// addReview is the API to review a place
func (s *Server) addReview(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		PlaceID string  `json:"place_id" binding:"required"`
		Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
		Comment string  `json:"comment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	review, err := s.mongoStore.AddReview(accountNumber, params.PlaceID, params.Rating, params.Comment)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": review,
	})
}

// toggleReviewLike is the API to like or unlike a review
func (s *Server) toggleReviewLike(c *gin.Context) {
	accountNumber := c.GetString("requester")

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	liked, err := s.mongoStore.ToggleReviewLike(accountNumber, reviewID)
	if err == store.ErrReviewNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorReviewNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": liked,
	})
}

// deleteReview is the API to remove a review written by the requester
func (s *Server) deleteReview(c *gin.Context) {
	accountNumber := c.GetString("requester")

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch err := s.mongoStore.DeleteReview(accountNumber, reviewID); err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"result": "OK"})
	case store.ErrReviewNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorReviewNotFound)
	case store.ErrNotReviewAuthor:
		abortWithEncoding(c, http.StatusForbidden, errorNotReviewAuthor)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
