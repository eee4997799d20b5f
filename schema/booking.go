package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookingCollection = "booking"

type Booking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	AccountNumber string             `json:"account_number" bson:"account_number"`
	PlaceID       string             `json:"place_id" bson:"place_id"`
	PlaceName     string             `json:"place_name" bson:"place_name"`
	PlaceCategory PlaceCategory      `json:"place_category" bson:"place_category"`
	StartDate     time.Time          `json:"start_date" bson:"start_date"`
	EndDate       time.Time          `json:"end_date" bson:"end_date"`
	Guests        int                `json:"guests" bson:"guests"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}
