// File: services/wizard/payment.go
package wizard

import (
	"context"
	"fmt"
	"time"

	"menagio/config"
	"menagio/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor authorizes a payment for one of the checkout methods.
// Real capture is delegated to the external processor; the wizard only
// consumes the success/error outcome.
type PaymentProcessor interface {
	Authorize(ctx context.Context, req models.PaymentRequest) (string, error)
}

// UnifiedPaymentProcessor routes card payments through Stripe when a key is
// configured and simulates every other method (and card without a key) with a
// fixed processing delay.
type UnifiedPaymentProcessor struct {
	Logger *zap.Logger
	Delay  time.Duration
}

// NewPaymentProcessor builds the processor with the configured simulation delay.
func NewPaymentProcessor(logger *zap.Logger) *UnifiedPaymentProcessor {
	return &UnifiedPaymentProcessor{
		Logger: logger,
		Delay:  time.Duration(config.AppConfig.PaymentDelayMillis) * time.Millisecond,
	}
}

// Authorize runs a single authorization attempt.
func (p *UnifiedPaymentProcessor) Authorize(ctx context.Context, req models.PaymentRequest) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("invalid payment amount: %.2f", req.Amount)
	}
	if !req.Method.Valid() {
		return "", fmt.Errorf("unsupported payment method: %s", req.Method)
	}

	if req.Method == models.PaymentMethodCard && config.AppConfig.StripeKey != "" {
		return p.authorizeCard(ctx, req)
	}
	return p.simulate(ctx, req)
}

// authorizeCard creates a Stripe PaymentIntent for the booking amount.
func (p *UnifiedPaymentProcessor) authorizeCard(ctx context.Context, req models.PaymentRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(req.Amount * 100)),
		Currency:           stripe.String(string(stripe.CurrencyCHF)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Description:        stripe.String(req.Description),
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.IdempotencyKey = stripe.String(req.Idempotency)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}

	p.Logger.Info("Card payment intent created", zap.String("intent", pi.ID))
	return pi.ID, nil
}

// simulate waits out the configured processing delay, honoring cancellation,
// then reports success. There is no capture logic behind it.
func (p *UnifiedPaymentProcessor) simulate(ctx context.Context, req models.PaymentRequest) (string, error) {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	paymentID := fmt.Sprintf("sim_%s_%s", req.Method, uuid.New().String())
	p.Logger.Info("Simulated payment authorized",
		zap.String("method", string(req.Method)),
		zap.String("payment", paymentID))
	return paymentID, nil
}

// StartPayment runs the payment sub-flow for the session's step 4. A
// successful authorization advances the wizard to the confirmation step; an
// error is recorded on the sub-flow state and the customer stays on the
// payment step to retry or switch methods.
func (s *DefaultWizardService) StartPayment(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.WizardSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep != models.StepPayment {
		return nil, fmt.Errorf("payment can only start from the payment step")
	}
	if !method.Valid() {
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}

	session.Draft.Payment = models.PaymentProgress{
		Method: method,
		State:  models.PaymentStatePending,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	amount := QuotePrice(session.Draft.ServiceType, session.Draft.Hours, len(session.Draft.Details.Extras))
	req := models.PaymentRequest{
		UserID:      session.UserID,
		Amount:      amount,
		Method:      method,
		Currency:    "CHF",
		Idempotency: session.SessionID + ":" + string(method),
		Description: "Home cleaning booking",
	}

	if _, err := s.Payments.Authorize(ctx, req); err != nil {
		session.Draft.Payment.State = models.PaymentStateError
		session.Draft.Payment.Message = err.Error()
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, nil
	}

	session.Draft.Payment.State = models.PaymentStateSuccess
	session.Draft.Payment.Message = ""
	session.CurrentStep = models.StepConfirmation
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
