package booking

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

type fakeRepo struct {
	bookings map[string]*models.Booking
}

func (f *fakeRepo) CreateBooking(b *models.Booking) error { return nil }

func (f *fakeRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}

func (f *fakeRepo) ListBookings(ctx context.Context, q models.ListQuery) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	updated := *b
	updated.Status = status
	f.bookings[id] = &updated
	return &updated, nil
}

func (f *fakeRepo) CreateInvoice(inv *models.Invoice) error { return nil }

func (f *fakeRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{}, nil
}

// bookingAt builds a booking scheduled the given duration from now.
func bookingAt(id, userID string, status models.BookingStatus, in time.Duration) *models.Booking {
	start := time.Now().Add(in)
	return &models.Booking{
		ID:     id,
		UserID: userID,
		Status: status,
		Date:   start.Format("2006-01-02"),
		Time:   start.Format("15:04"),
	}
}

func newService(repo *fakeRepo) *DefaultCustomerBookingService {
	return &DefaultCustomerBookingService{Repo: repo, Logger: zap.NewNop()}
}

func TestGetMineOwnership(t *testing.T) {
	repo := &fakeRepo{bookings: map[string]*models.Booking{
		"booking_1": {ID: "booking_1", UserID: "alice"},
	}}
	svc := newService(repo)

	b, err := svc.GetMine(context.Background(), "alice", "booking_1")
	require.NoError(t, err)
	assert.Equal(t, "booking_1", b.ID)

	_, err = svc.GetMine(context.Background(), "bob", "booking_1")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCancelMine(t *testing.T) {
	tests := []struct {
		name    string
		booking *models.Booking
		userID  string
		wantErr error
	}{
		{
			name:    "pending well in advance",
			booking: bookingAt("b1", "alice", models.BookingStatusPending, 72*time.Hour),
			userID:  "alice",
		},
		{
			name:    "confirmed well in advance",
			booking: bookingAt("b1", "alice", models.BookingStatusConfirmed, 48*time.Hour),
			userID:  "alice",
		},
		{
			name:    "inside the 24h window",
			booking: bookingAt("b1", "alice", models.BookingStatusConfirmed, 12*time.Hour),
			userID:  "alice",
			wantErr: ErrTooLateToCancel,
		},
		{
			name:    "already started",
			booking: bookingAt("b1", "alice", models.BookingStatusConfirmed, -time.Hour),
			userID:  "alice",
			wantErr: ErrTooLateToCancel,
		},
		{
			name:    "in progress",
			booking: bookingAt("b1", "alice", models.BookingStatusInProgress, 72*time.Hour),
			userID:  "alice",
			wantErr: ErrNotCancellable,
		},
		{
			name:    "completed",
			booking: bookingAt("b1", "alice", models.BookingStatusCompleted, 72*time.Hour),
			userID:  "alice",
			wantErr: ErrNotCancellable,
		},
		{
			name:    "already cancelled",
			booking: bookingAt("b1", "alice", models.BookingStatusCancelled, 72*time.Hour),
			userID:  "alice",
			wantErr: ErrNotCancellable,
		},
		{
			name:    "someone else's booking",
			booking: bookingAt("b1", "alice", models.BookingStatusPending, 72*time.Hour),
			userID:  "bob",
			wantErr: ErrNotOwner,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{bookings: map[string]*models.Booking{tt.booking.ID: tt.booking}}
			svc := newService(repo)

			updated, err := svc.CancelMine(context.Background(), tt.userID, tt.booking.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.booking.Status, repo.bookings[tt.booking.ID].Status,
					"a rejected cancellation must not change the stored status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.BookingStatusCancelled, updated.Status)
		})
	}
}

func TestCancelMineUnparsableScheduleStillCancels(t *testing.T) {
	// Legacy records with free-form date strings skip the 24h check rather
	// than becoming uncancellable.
	repo := &fakeRepo{bookings: map[string]*models.Booking{
		"b1": {ID: "b1", UserID: "alice", Status: models.BookingStatusPending, Date: "next tuesday", Time: "morning"},
	}}
	svc := newService(repo)

	updated, err := svc.CancelMine(context.Background(), "alice", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}
