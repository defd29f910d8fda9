package admin

import (
	"context"

	"menagio/models"

	bookingRepo "menagio/database/repository/booking"
	quoteRepo "menagio/database/repository/quote"
	userRepo "menagio/database/repository/user"

	"go.uber.org/zap"
)

// Console bundles the three list controllers backing one admin session tab.
// Each controller lives as long as the session does.
type Console struct {
	Bookings *ListController[models.Booking]
	Clients  *ListController[models.User]
	Quotes   *ListController[models.QuoteRequest]
}

// NewConsole wires fresh list controllers to the repositories.
func NewConsole(
	bookings bookingRepo.BookingRepository,
	users userRepo.UserRepository,
	quotes quoteRepo.QuoteRepository,
	logger *zap.Logger,
) *Console {
	return &Console{
		Bookings: NewListController(func(ctx context.Context, q models.ListQuery) ([]models.Booking, int64, error) {
			return bookings.ListBookings(ctx, q)
		}, logger),
		Clients: NewListController(func(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
			return users.ListClients(ctx, q)
		}, logger),
		Quotes: NewListController(func(ctx context.Context, q models.ListQuery) ([]models.QuoteRequest, int64, error) {
			return quotes.ListQuotes(ctx, q)
		}, logger),
	}
}
