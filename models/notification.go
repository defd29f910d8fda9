package models

// Notification event kinds dispatched after booking state changes.
const (
	NotifyBookingConfirmed = "booking_confirmed"
	NotifyBookingCancelled = "booking_cancelled"
	NotifyBookingReminder  = "booking_reminder"
)

// BookingNotification is the snapshot handed to the dispatch worker.
// Delivery is fire-and-forget; the core only logs the outcome.
type BookingNotification struct {
	Kind      string `json:"kind"`
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Address   string `json:"address"`
}
