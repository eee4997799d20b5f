package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wandermate/wandermate-api/schema"
)

var (
	ErrReviewNotFound  = fmt.Errorf("review not found")
	ErrNotReviewAuthor = fmt.Errorf("not the review author")
)

type Review interface {
	AddReview(accountNumber, placeID string, rating float64, comment string) (*schema.Review, error)
	ListReviews(placeID string, limit int64) ([]schema.Review, error)
	ToggleReviewLike(accountNumber string, reviewID primitive.ObjectID) (bool, error)
	DeleteReview(accountNumber string, reviewID primitive.ObjectID) error
}

// AddReview stores a review of a place.
func (m *mongoDB) AddReview(accountNumber, placeID string, rating float64, comment string) (*schema.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	review := schema.Review{
		ID:            primitive.NewObjectID(),
		PlaceID:       placeID,
		AccountNumber: accountNumber,
		Rating:        rating,
		Comment:       comment,
		LikedBy:       []string{},
		Timestamp:     time.Now().Unix(),
	}

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)
	if _, err := c.InsertOne(ctx, review); err != nil {
		return nil, err
	}

	return &review, nil
}

// ListReviews returns reviews of a place, newest first.
func (m *mongoDB) ListReviews(placeID string, limit int64) ([]schema.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	opts := options.Find().SetSort(bson.M{"ts": -1}).SetLimit(limit)
	cur, err := c.Find(ctx, bson.M{"place_id": placeID}, opts)
	if err != nil {
		return nil, err
	}

	reviews := make([]schema.Review, 0)
	for cur.Next(ctx) {
		var r schema.Review
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		r.Likes = len(r.LikedBy)
		reviews = append(reviews, r)
	}

	return reviews, nil
}

// ToggleReviewLike records or withdraws a like on a review. It returns the
// new liked state for the account.
func (m *mongoDB) ToggleReviewLike(accountNumber string, reviewID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	var review schema.Review
	if err := c.FindOne(ctx, bson.M{"_id": reviewID}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, ErrReviewNotFound
		}
		return false, err
	}

	liked := false
	for _, a := range review.LikedBy {
		if a == accountNumber {
			liked = true
			break
		}
	}

	update := bson.M{"$addToSet": bson.M{"liked_by": accountNumber}}
	if liked {
		update = bson.M{"$pull": bson.M{"liked_by": accountNumber}}
	}

	if _, err := c.UpdateOne(ctx, bson.M{"_id": reviewID}, update); err != nil {
		return liked, err
	}

	return !liked, nil
}

// DeleteReview removes a review. Only the author may delete it.
func (m *mongoDB) DeleteReview(accountNumber string, reviewID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	result, err := c.DeleteOne(ctx, bson.M{
		"_id":            reviewID,
		"account_number": accountNumber,
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}
