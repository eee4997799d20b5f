package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wandermate/wandermate-api/schema"
)

var (
	ErrBookingNotFound    = fmt.Errorf("booking not found")
	ErrInvalidBookingDate = fmt.Errorf("booking end date is before its start date")
)

type Booking interface {
	AddBooking(accountNumber string, booking schema.Booking) (*schema.Booking, error)
	ListBookings(accountNumber string) ([]schema.Booking, error)
	CancelBooking(accountNumber string, bookingID primitive.ObjectID) error
}

// AddBooking stores a booking for an account.
func (m *mongoDB) AddBooking(accountNumber string, booking schema.Booking) (*schema.Booking, error) {
	if booking.EndDate.Before(booking.StartDate) {
		return nil, ErrInvalidBookingDate
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	booking.AccountNumber = accountNumber
	booking.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)
	if _, err := c.InsertOne(ctx, booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// ListBookings returns an account's bookings, most recent first.
func (m *mongoDB) ListBookings(accountNumber string) ([]schema.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := c.Find(ctx, bson.M{"account_number": accountNumber}, opts)
	if err != nil {
		return nil, err
	}

	bookings := make([]schema.Booking, 0)
	for cur.Next(ctx) {
		var b schema.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// CancelBooking removes a booking owned by the account.
func (m *mongoDB) CancelBooking(accountNumber string, bookingID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BookingCollection)

	result, err := c.DeleteOne(ctx, bson.M{
		"_id":            bookingID,
		"account_number": accountNumber,
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrBookingNotFound
	}

	return nil
}
