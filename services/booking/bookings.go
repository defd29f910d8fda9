package booking

import (
	"context"
	"errors"
	"time"

	"menagio/models"
)

var (
	// ErrNotOwner means the booking belongs to a different customer.
	ErrNotOwner = errors.New("booking does not belong to this user")
	// ErrNotCancellable means only pending or confirmed bookings can be cancelled.
	ErrNotCancellable = errors.New("booking can no longer be cancelled")
	// ErrTooLateToCancel enforces the 24-hours-before policy.
	ErrTooLateToCancel = errors.New("bookings can only be cancelled up to 24h before the scheduled start")
)

// ListMine returns the customer's bookings, newest first.
func (s *DefaultCustomerBookingService) ListMine(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListBookingsByUser(ctx, userID)
}

// GetMine returns one booking after checking ownership.
func (s *DefaultCustomerBookingService) GetMine(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	return b, nil
}

// CancelMine cancels a customer's own booking. Only pending or confirmed
// bookings qualify, and only up to 24 hours before the scheduled start.
func (s *DefaultCustomerBookingService) CancelMine(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.GetMine(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, ErrNotCancellable
	}

	if start, err := b.ScheduledStart(); err == nil {
		if time.Until(start) < 24*time.Hour {
			return nil, ErrTooLateToCancel
		}
	}

	updated, err := s.Repo.UpdateBookingStatus(ctx, bookingID, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.BookingCancelled(ctx, updated)
	}
	return updated, nil
}
