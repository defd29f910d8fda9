// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a new wizard session. When a quick-book handoff token is
// supplied the transient draft left by the marketing form is claimed
// (read-once) and used to pre-fill the session. An authenticated identity
// pre-fills name and email without overwriting claimed draft values.
func (s *DefaultWizardService) Start(ctx context.Context, auth *models.AuthSession, handoffToken string) (*models.WizardSession, error) {
	session := models.WizardSession{
		SessionID:   uuid.New().String(),
		CurrentStep: models.StepSchedule,
		Draft: models.BookingDraft{
			ServiceType: models.ServiceCleaning,
		},
	}

	if handoffToken != "" {
		if draft, err := ClaimQuickBookDraft(ctx, handoffToken); err == nil && draft != nil {
			session.Draft = *draft
		} else if err != nil {
			s.Logger.Debug("quick-book draft not claimed", zap.String("token", handoffToken), zap.Error(err))
		}
	}

	if auth != nil {
		auth = s.resolveIdentity(ctx, auth)
		session.IsAuthenticated = true
		session.UserID = auth.UserID
		prefillIdentity(&session.Draft, auth)
	}

	if err := s.saveSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Get returns the current session state.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.loadSession(ctx, sessionID)
}

// UpdateDraft replaces the session's draft with the client's edits. The
// payment sub-flow state is owned server-side and survives the replace.
func (s *DefaultWizardService) UpdateDraft(ctx context.Context, sessionID string, draft models.BookingDraft) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payment := session.Draft.Payment
	session.Draft = draft
	session.Draft.Payment = payment

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the wizard one step. Leaving step 2 while unauthenticated
// never advances: it opens the sign-in modal and records that the advance
// should complete once authentication succeeds.
func (s *DefaultWizardService) Next(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.CurrentStep == models.StepTasks && !session.IsAuthenticated {
		session.AuthModalVisible = true
		session.AuthAdvancePending = true
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}
		return session, ErrAuthRequired
	}

	if session.CurrentStep == models.StepPayment {
		return session, ErrPaymentRequired
	}

	if !CanProceed(&session.Draft, session.CurrentStep) {
		return session, ErrStepIncomplete
	}

	if session.CurrentStep < models.StepConfirmation {
		session.CurrentStep++
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step backwards. No validation applies.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.CurrentStep > models.StepSchedule {
		session.CurrentStep--
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Authenticate records a successful sign-in inside the wizard. Name and email
// are pre-filled only where the draft is still empty, and a pending step-2
// advance completes exactly once.
func (s *DefaultWizardService) Authenticate(ctx context.Context, sessionID string, auth models.AuthSession) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resolved := s.resolveIdentity(ctx, &auth)
	session.IsAuthenticated = true
	session.UserID = resolved.UserID
	session.AuthModalVisible = false
	prefillIdentity(&session.Draft, resolved)

	if session.AuthAdvancePending && session.CurrentStep == models.StepTasks {
		session.CurrentStep = models.StepPersonalInfo
	}
	session.AuthAdvancePending = false

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DismissAuthModal abandons the sign-in interrupt. The pending advance is
// dropped with it.
func (s *DefaultWizardService) DismissAuthModal(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.AuthModalVisible = false
	session.AuthAdvancePending = false

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit finalizes the booking from the confirmation step. On persistence
// failure the session (and the draft inside it) is kept so the client can
// retry without losing anything.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep != models.StepConfirmation {
		return nil, ErrNotConfirmationStep
	}
	if session.IsSubmitting {
		return nil, ErrAlreadySubmitting
	}

	session.IsSubmitting = true
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	booking := buildBooking(session)
	if err := s.BookingRepo.CreateBooking(booking); err != nil {
		session.IsSubmitting = false
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			s.Logger.Error("failed to restore session after submit failure", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if session.Draft.Payment.State == models.PaymentStateSuccess {
		inv := &models.Invoice{
			InvoiceID: uuid.New().String(),
			BookingID: booking.ID,
			UserID:    booking.UserID,
			Amount:    booking.TotalPrice,
			Currency:  "CHF",
			Status:    "paid",
			Method:    string(session.Draft.Payment.Method),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.BookingRepo.CreateInvoice(inv); err != nil {
			s.Logger.Error("failed to record invoice", zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	// Notification dispatch is fire-and-forget: failures are logged, never
	// surfaced to the customer.
	if s.Notifier != nil {
		s.Notifier.BookingConfirmed(ctx, booking)
	}

	if err := s.store().Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear wizard session", zap.String("session", sessionID), zap.Error(err))
	}
	return booking, nil
}

// Cancel abandons a wizard session explicitly.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.store().Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

// --- session store ---

func (s *DefaultWizardService) store() SessionStore {
	if s.Sessions != nil {
		return s.Sessions
	}
	return &RedisSessionStore{}
}

func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.store().Get(ctx, sessionID)
}

func (s *DefaultWizardService) saveSession(ctx context.Context, session *models.WizardSession) error {
	return s.store().Save(ctx, session)
}

// --- helpers ---

// resolveIdentity fills identity fields the auth middleware leaves empty by
// loading the user's profile. The token only carries the user ID and role;
// name and email live on the profile record.
func (s *DefaultWizardService) resolveIdentity(ctx context.Context, auth *models.AuthSession) *models.AuthSession {
	if auth.FirstName != "" && auth.Email != "" {
		return auth
	}
	if s.UserRepo == nil || auth.UserID == "" {
		return auth
	}

	u, err := s.UserRepo.GetUserByID(ctx, auth.UserID)
	if err != nil || u == nil {
		s.Logger.Warn("could not load profile for wizard prefill",
			zap.String("user", auth.UserID), zap.Error(err))
		return auth
	}

	resolved := *auth
	if resolved.FirstName == "" {
		resolved.FirstName = u.FirstName
	}
	if resolved.LastName == "" {
		resolved.LastName = u.LastName
	}
	if resolved.Email == "" {
		resolved.Email = u.Email
	}
	return &resolved
}

// prefillIdentity copies name and email from the authenticated identity into
// empty draft fields. Non-empty fields are never overwritten.
func prefillIdentity(draft *models.BookingDraft, auth *models.AuthSession) {
	if draft.FirstName == "" {
		draft.FirstName = auth.FirstName
	}
	if draft.LastName == "" {
		draft.LastName = auth.LastName
	}
	if draft.Email == "" {
		draft.Email = auth.Email
	}
}

func buildBooking(session *models.WizardSession) *models.Booking {
	d := session.Draft
	now := time.Now()
	serviceType := d.ServiceType
	if !serviceType.Valid() {
		serviceType = models.ServiceCleaning
	}
	return &models.Booking{
		ID:            fmt.Sprintf("booking_%d", now.UnixMilli()),
		UserID:        session.UserID,
		ServiceType:   serviceType,
		Address:       d.Address,
		HomeType:      d.HomeType,
		HomeSizeM2:    d.HomeSizeM2,
		Date:          d.Date,
		Time:          d.Time,
		Hours:         d.Hours,
		Tasks:         d.Tasks,
		Details:       d.Details,
		Location:      d.Location,
		Status:        models.BookingStatusPending,
		TotalPrice:    QuotePrice(serviceType, d.Hours, len(d.Details.Extras)),
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		Phone:         d.Phone,
		PaymentMethod: d.Payment.Method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
