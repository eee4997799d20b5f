package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ReviewCollection = "review"

// Review is a user review of a place. LikedBy holds the account numbers of
// users who liked the review; the like count is derived from it.
type Review struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	PlaceID       string             `json:"place_id" bson:"place_id"`
	AccountNumber string             `json:"account_number" bson:"account_number"`
	Rating        float64            `json:"rating" bson:"rating"`
	Comment       string             `json:"comment" bson:"comment"`
	LikedBy       []string           `json:"-" bson:"liked_by"`
	Likes         int                `json:"likes" bson:"-"`
	Timestamp     int64              `json:"ts" bson:"ts"`
}
