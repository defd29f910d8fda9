package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBooking inserts a new booking document.
func (repo *MongoBookingRepo) CreateBooking(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.bookingColl.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.bookingColl.FindOne(ctxWithTimeout, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// UpdateBookingStatus atomically sets the status and updated_at of a booking
// and returns the updated document. Nothing changes when the write fails.
func (repo *MongoBookingRepo) UpdateBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	if err := repo.bookingColl.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("error updating status for booking %s: %w", bookingID, err)
	}
	return &updated, nil
}

// CreateInvoice inserts a payment invoice document.
func (repo *MongoBookingRepo) CreateInvoice(inv *models.Invoice) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.invoiceColl.InsertOne(ctx, inv)
	if err != nil {
		return fmt.Errorf("error creating invoice: %w", err)
	}
	return nil
}
