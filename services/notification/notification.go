package notification

import (
	"context"
	"fmt"
	"time"

	"menagio/models"
	"menagio/services/tasks"
	"menagio/utils"

	userRepo "menagio/database/repository/user"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users  userRepo.UserRepository
	Queue  *asynq.Client
	Logger *zap.Logger
}

// BookingConfirmed enqueues the confirmation email, schedules the 24h
// reminder and sends a push. Every failure is logged and swallowed.
func (s *DefaultNotificationService) BookingConfirmed(ctx context.Context, booking *models.Booking) {
	payload := snapshot(models.NotifyBookingConfirmed, booking)
	s.enqueueEmail(payload)

	if start, err := booking.ScheduledStart(); err == nil {
		fireAt := start.Add(-24 * time.Hour)
		if fireAt.After(time.Now()) {
			s.enqueueReminder(snapshot(models.NotifyBookingReminder, booking), fireAt)
		}
	} else {
		s.Logger.Warn("cannot schedule reminder, unparseable schedule",
			zap.String("booking", booking.ID), zap.Error(err))
	}

	if err := s.SendUserPushNotification(ctx, booking.UserID,
		"Booking received",
		fmt.Sprintf("Your cleaning on %s at %s is being confirmed.", booking.Date, booking.Time),
		map[string]string{"bookingId": booking.ID}); err != nil {
		s.Logger.Warn("push notification failed", zap.String("booking", booking.ID), zap.Error(err))
	}
}

// BookingCancelled enqueues the cancellation email and sends a push.
func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, booking *models.Booking) {
	s.enqueueEmail(snapshot(models.NotifyBookingCancelled, booking))

	if err := s.SendUserPushNotification(ctx, booking.UserID,
		"Booking cancelled",
		fmt.Sprintf("Your booking on %s has been cancelled.", booking.Date),
		map[string]string{"bookingId": booking.ID}); err != nil {
		s.Logger.Warn("push notification failed", zap.String("booking", booking.ID), zap.Error(err))
	}
}

// SendUserPushNotification looks up the user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("messaging client not initialized")
	}
	if userID == "" {
		return fmt.Errorf("missing user ID")
	}

	u, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) enqueueEmail(payload models.BookingNotification) {
	if s.Queue == nil {
		s.Logger.Debug("email queue not configured, skipping dispatch", zap.String("kind", payload.Kind))
		return
	}
	task, opts, err := tasks.NewEmailTask(payload)
	if err != nil {
		s.Logger.Error("failed to build email task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		s.Logger.Error("failed to enqueue email task", zap.String("kind", payload.Kind), zap.Error(err))
	}
}

func (s *DefaultNotificationService) enqueueReminder(payload models.BookingNotification, fireAt time.Time) {
	if s.Queue == nil {
		return
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		s.Logger.Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		s.Logger.Error("failed to enqueue reminder task", zap.String("booking", payload.BookingID), zap.Error(err))
	}
}

func snapshot(kind string, booking *models.Booking) models.BookingNotification {
	return models.BookingNotification{
		Kind:      kind,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Email:     booking.Email,
		FirstName: booking.FirstName,
		Date:      booking.Date,
		Time:      booking.Time,
		Address:   booking.Address,
	}
}
