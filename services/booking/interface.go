package booking

import (
	"context"

	"menagio/models"
	"menagio/services/notification"

	bookingRepo "menagio/database/repository/booking"

	"go.uber.org/zap"
)

// CustomerBookingService exposes a customer's own bookings on the dashboard.
type CustomerBookingService interface {
	ListMine(ctx context.Context, userID string) ([]models.Booking, error)
	GetMine(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	CancelMine(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

// DefaultCustomerBookingService is the production implementation.
type DefaultCustomerBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}
