package bookingRepo

import (
	"context"

	"menagio/database"
	"menagio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines persistence operations for booking records.
type BookingRepository interface {
	CreateBooking(booking *models.Booking) error
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, q models.ListQuery) ([]models.Booking, int64, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error)
	CreateInvoice(inv *models.Invoice) error
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// MongoBookingRepo is the MongoDB implementation of BookingRepository.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	invoiceColl *mongo.Collection
}

// NewMongoBookingRepo wires the repository to the bookings and invoices collections.
func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		invoiceColl: db.Collection("invoices"),
	}
}
