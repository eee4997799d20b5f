package schema

const PlaceSnapshotCollection = "place_snapshot"

// PlaceSnapshot is the last successful place list fetched for an account.
// It backs the offline fallback: when the POI provider yields nothing, a
// fresh-enough snapshot is served instead.
type PlaceSnapshot struct {
	AccountNumber string  `json:"account_number" bson:"account_number"`
	Places        []Place `json:"places" bson:"places"`
	Timestamp     int64   `json:"ts" bson:"ts"`
}
