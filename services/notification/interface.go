package notification

import (
	"context"

	"menagio/models"
)

// NotificationService dispatches customer-facing notifications. Dispatch is
// fire-and-forget: the booking flow never acts on the outcome beyond logging.
type NotificationService interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking)
	BookingCancelled(ctx context.Context, booking *models.Booking)
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}
