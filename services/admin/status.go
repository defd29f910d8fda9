// File: services/admin/status.go
package admin

import (
	"context"
	"fmt"

	"menagio/models"
	"menagio/services/notification"

	bookingRepo "menagio/database/repository/booking"
	quoteRepo "menagio/database/repository/quote"

	"go.uber.org/zap"
)

// StatusService applies back-office status changes to bookings and quotes.
type StatusService interface {
	SetBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, *models.DashboardStats, error)
	SetQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) (*models.QuoteRequest, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultStatusService is the production implementation.
type DefaultStatusService struct {
	Bookings bookingRepo.BookingRepository
	Quotes   quoteRepo.QuoteRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

// SetBookingStatus persists the new status and refreshes the dashboard
// aggregates. The admin selector exposes the full enum, so any status may be
// set from any other; only enum membership is checked. The write is atomic:
// on error nothing changed and the caller keeps its prior row.
func (s *DefaultStatusService) SetBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, *models.DashboardStats, error) {
	if !status.Valid() {
		return nil, nil, fmt.Errorf("invalid booking status: %s", status)
	}

	updated, err := s.Bookings.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.Bookings.DashboardStats(ctx)
	if err != nil {
		// The status write already succeeded; stale counters are preferable
		// to failing the operation.
		s.Logger.Warn("failed to refresh dashboard stats", zap.Error(err))
		stats = nil
	}

	if s.Notifier != nil {
		switch status {
		case models.BookingStatusConfirmed:
			s.Notifier.BookingConfirmed(ctx, updated)
		case models.BookingStatusCancelled:
			s.Notifier.BookingCancelled(ctx, updated)
		}
	}

	return updated, stats, nil
}

// SetQuoteStatus persists the new quote status.
func (s *DefaultStatusService) SetQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) (*models.QuoteRequest, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid quote status: %s", status)
	}
	return s.Quotes.UpdateQuoteStatus(ctx, quoteID, status)
}

// DashboardStats returns the booking counters and revenue.
func (s *DefaultStatusService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.Bookings.DashboardStats(ctx)
}
