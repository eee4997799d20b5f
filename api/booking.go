package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wandermate/wandermate-api/schema"
	"github.com/wandermate/wandermate-api/store"
)

// listBookings is the API to query the requester's bookings
func (s *Server) listBookings(c *gin.Context) {
	accountNumber := c.GetString("requester")

	bookings, err := s.mongoStore.ListBookings(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
	})
}

// addBooking is the API to book a place
func (s *Server) addBooking(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		PlaceID       string    `json:"place_id" binding:"required"`
		PlaceName     string    `json:"place_name" binding:"required"`
		PlaceCategory string    `json:"place_category"`
		StartDate     time.Time `json:"start_date" binding:"required"`
		EndDate       time.Time `json:"end_date" binding:"required"`
		Guests        int       `json:"guests" binding:"required,min=1"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var category schema.PlaceCategory
	if params.PlaceCategory != "" {
		parsed, err := schema.ParsePlaceCategory(params.PlaceCategory)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownPlaceCategory)
			return
		}
		category = parsed
	}

	booking, err := s.mongoStore.AddBooking(accountNumber, schema.Booking{
		PlaceID:       params.PlaceID,
		PlaceName:     params.PlaceName,
		PlaceCategory: category,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Guests:        params.Guests,
	})
	if err == store.ErrInvalidBookingDate {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidBookingDate)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": booking,
	})
}

// cancelBooking is the API to cancel a booking owned by the requester
func (s *Server) cancelBooking(c *gin.Context) {
	accountNumber := c.GetString("requester")

	bookingID, err := primitive.ObjectIDFromHex(c.Param("bookingID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch err := s.mongoStore.CancelBooking(accountNumber, bookingID); err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"result": "OK"})
	case store.ErrBookingNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorBookingNotFound)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
