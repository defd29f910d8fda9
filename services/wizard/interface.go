package wizard

import (
	"context"

	"menagio/models"
	"menagio/services/notification"

	bookingRepo "menagio/database/repository/booking"
	userRepo "menagio/database/repository/user"

	"go.uber.org/zap"
)

// WizardService manages the stateful multi-step booking flow.
type WizardService interface {
	Start(ctx context.Context, auth *models.AuthSession, handoffToken string) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	UpdateDraft(ctx context.Context, sessionID string, draft models.BookingDraft) (*models.WizardSession, error)
	Next(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Authenticate(ctx context.Context, sessionID string, auth models.AuthSession) (*models.WizardSession, error)
	DismissAuthModal(ctx context.Context, sessionID string) (*models.WizardSession, error)
	StartPayment(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService on top of a session store.
// A nil Sessions field falls back to the Redis store.
type DefaultWizardService struct {
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Sessions    SessionStore
	Payments    PaymentProcessor
	Notifier    notification.NotificationService
	Logger      *zap.Logger
}
