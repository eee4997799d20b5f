package schema

import "time"

const FavoriteCollection = "favorite"

// Favorite marks a place saved by an account. Place ids are the stringified
// OSM element ids, so a favorite survives re-fetching the place list.
type Favorite struct {
	AccountNumber string    `json:"account_number" bson:"account_number"`
	PlaceID       string    `json:"place_id" bson:"place_id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
