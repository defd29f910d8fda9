package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"menagio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings    map[string]*models.Booking
	statusErr   error
	statsErr    error
	statusCalls int
}

func (f *fakeBookingRepo) CreateBooking(b *models.Booking) error { return nil }

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}

func (f *fakeBookingRepo) ListBookings(ctx context.Context, q models.ListQuery) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	updated := *b
	updated.Status = status
	updated.UpdatedAt = time.Now()
	f.bookings[id] = &updated
	return &updated, nil
}

func (f *fakeBookingRepo) CreateInvoice(inv *models.Invoice) error { return nil }

func (f *fakeBookingRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	var stats models.DashboardStats
	for _, b := range f.bookings {
		stats.Total++
		switch b.Status {
		case models.BookingStatusPending:
			stats.Pending++
		case models.BookingStatusConfirmed:
			stats.Confirmed++
		case models.BookingStatusCancelled:
			stats.Cancelled++
		}
	}
	return &stats, nil
}

type fakeQuoteRepo struct {
	quotes map[string]*models.QuoteRequest
}

func (f *fakeQuoteRepo) CreateQuote(q *models.QuoteRequest) error { return nil }

func (f *fakeQuoteRepo) GetQuoteByID(ctx context.Context, id string) (*models.QuoteRequest, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, errors.New("quote not found")
	}
	return q, nil
}

func (f *fakeQuoteRepo) ListQuotes(ctx context.Context, q models.ListQuery) ([]models.QuoteRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeQuoteRepo) UpdateQuoteStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.QuoteRequest, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, errors.New("quote not found")
	}
	updated := *q
	updated.Status = status
	f.quotes[id] = &updated
	return &updated, nil
}

func newStatusService(bookings *fakeBookingRepo, quotes *fakeQuoteRepo) *DefaultStatusService {
	return &DefaultStatusService{
		Bookings: bookings,
		Quotes:   quotes,
		Logger:   zap.NewNop(),
	}
}

func TestSetBookingStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"booking_1": {ID: "booking_1", Status: models.BookingStatusPending},
		"booking_2": {ID: "booking_2", Status: models.BookingStatusConfirmed},
	}}
	svc := newStatusService(repo, &fakeQuoteRepo{})

	updated, stats, err := svc.SetBookingStatus(context.Background(), "booking_1", models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.False(t, updated.UpdatedAt.IsZero())
	require.NotNil(t, stats)
	assert.Equal(t, int64(2), stats.Confirmed)
	assert.Equal(t, int64(0), stats.Pending)
}

func TestSetBookingStatusAnyTransition(t *testing.T) {
	// The admin selector exposes the full enum; a completed booking may be
	// moved back after a mistaken click.
	repo := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"booking_1": {ID: "booking_1", Status: models.BookingStatusCompleted},
	}}
	svc := newStatusService(repo, &fakeQuoteRepo{})

	updated, _, err := svc.SetBookingStatus(context.Background(), "booking_1", models.BookingStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusInProgress, updated.Status)
}

func TestSetBookingStatusInvalidEnum(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"booking_1": {ID: "booking_1", Status: models.BookingStatusPending},
	}}
	svc := newStatusService(repo, &fakeQuoteRepo{})

	_, _, err := svc.SetBookingStatus(context.Background(), "booking_1", models.BookingStatus("archived"))
	require.Error(t, err)
	assert.Zero(t, repo.statusCalls, "invalid status must not reach the repository")
}

func TestSetBookingStatusWriteFailure(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings:  map[string]*models.Booking{"booking_1": {ID: "booking_1", Status: models.BookingStatusPending}},
		statusErr: errors.New("write conflict"),
	}
	svc := newStatusService(repo, &fakeQuoteRepo{})

	_, _, err := svc.SetBookingStatus(context.Background(), "booking_1", models.BookingStatusConfirmed)
	require.Error(t, err)
	assert.Equal(t, models.BookingStatusPending, repo.bookings["booking_1"].Status)
}

func TestSetBookingStatusStatsFailureTolerated(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: map[string]*models.Booking{"booking_1": {ID: "booking_1", Status: models.BookingStatusPending}},
		statsErr: errors.New("aggregation timeout"),
	}
	svc := newStatusService(repo, &fakeQuoteRepo{})

	updated, stats, err := svc.SetBookingStatus(context.Background(), "booking_1", models.BookingStatusConfirmed)
	require.NoError(t, err, "a stats refresh failure must not fail the status write")
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.Nil(t, stats)
}

func TestSetQuoteStatus(t *testing.T) {
	quotes := &fakeQuoteRepo{quotes: map[string]*models.QuoteRequest{
		"quote_1": {ID: "quote_1", Status: models.QuoteStatusPending},
	}}
	svc := newStatusService(&fakeBookingRepo{}, quotes)

	updated, err := svc.SetQuoteStatus(context.Background(), "quote_1", models.QuoteStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusContacted, updated.Status)

	_, err = svc.SetQuoteStatus(context.Background(), "quote_1", models.QuoteStatus("spam"))
	require.Error(t, err)
}
