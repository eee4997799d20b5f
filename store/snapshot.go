package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wandermate/wandermate-api/schema"
)

// snapshotTTL bounds how long a cached place list is served when the POI
// provider is unreachable.
const snapshotTTL = 24 * time.Hour

type PlaceSnapshot interface {
	CachePlaces(accountNumber string, places []schema.Place) error
	CachedPlaces(accountNumber string) ([]schema.Place, error)
}

// CachePlaces stores the latest successful place list for an account,
// replacing any previous snapshot.
func (m *mongoDB) CachePlaces(accountNumber string, places []schema.Place) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PlaceSnapshotCollection)

	snapshot := schema.PlaceSnapshot{
		AccountNumber: accountNumber,
		Places:        places,
		Timestamp:     time.Now().Unix(),
	}

	opts := options.Replace().SetUpsert(true)
	_, err := c.ReplaceOne(ctx, bson.M{"account_number": accountNumber}, snapshot, opts)
	return err
}

// CachedPlaces returns the snapshot for an account if it is fresh enough.
// A missing or expired snapshot yields an empty list, not an error.
func (m *mongoDB) CachedPlaces(accountNumber string) ([]schema.Place, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PlaceSnapshotCollection)

	var snapshot schema.PlaceSnapshot
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&snapshot); err != nil {
		if err == mongo.ErrNoDocuments {
			return []schema.Place{}, nil
		}
		return nil, err
	}

	if time.Since(time.Unix(snapshot.Timestamp, 0)) > snapshotTTL {
		return []schema.Place{}, nil
	}

	return snapshot.Places, nil
}
