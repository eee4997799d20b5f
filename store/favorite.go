package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wandermate/wandermate-api/schema"
)

type Favorite interface {
	GetFavoriteIDs(accountNumber string) ([]string, error)
	ToggleFavorite(accountNumber, placeID string) (bool, error)
	ApplyFavorites(accountNumber string, places []schema.Place) ([]schema.Place, error)
}

// GetFavoriteIDs returns the place ids an account has saved.
func (m *mongoDB) GetFavoriteIDs(accountNumber string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FavoriteCollection)

	cur, err := c.Find(ctx, bson.M{"account_number": accountNumber})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for cur.Next(ctx) {
		var f schema.Favorite
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		ids = append(ids, f.PlaceID)
	}

	return ids, nil
}

// ToggleFavorite saves a place for an account, or removes it if it was
// already saved. It returns the new favorite state.
func (m *mongoDB) ToggleFavorite(accountNumber, placeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FavoriteCollection)

	query := bson.M{
		"account_number": accountNumber,
		"place_id":       placeID,
	}

	var existing schema.Favorite
	err := c.FindOne(ctx, query).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		_, err := c.InsertOne(ctx, schema.Favorite{
			AccountNumber: accountNumber,
			PlaceID:       placeID,
			CreatedAt:     time.Now().UTC(),
		})
		return err == nil, err
	}
	if err != nil {
		return false, err
	}

	if _, err := c.DeleteOne(ctx, query); err != nil {
		return true, err
	}
	return false, nil
}

// ApplyFavorites returns a copy of places with IsFavorite set for every
// place the account has saved.
func (m *mongoDB) ApplyFavorites(accountNumber string, places []schema.Place) ([]schema.Place, error) {
	ids, err := m.GetFavoriteIDs(accountNumber)
	if err != nil {
		return places, err
	}

	saved := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		saved[id] = struct{}{}
	}

	result := make([]schema.Place, len(places))
	for i, p := range places {
		_, p.IsFavorite = saved[p.ID]
		result[i] = p
	}

	return result, nil
}
