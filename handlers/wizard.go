// File: menagio/handlers/wizard.go
package handlers

import (
	"errors"
	"net/http"

	"menagio/middleware"
	"menagio/models"
	"menagio/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard endpoints.
type WizardHandler struct {
	Service wizard.WizardService
	Logger  *zap.Logger
}

// NewWizardHandler wires the wizard service into HTTP handlers.
func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: svc, Logger: logger}
}

// StartSession creates a new wizard session, optionally claiming a quick-book
// draft handed off by the landing page form.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var input struct {
		HandoffToken string `json:"handoffToken"`
	}
	// Body is optional.
	_ = c.ShouldBindJSON(&input)

	var auth *models.AuthSession
	if session, ok := middleware.AuthSessionFromContext(c); ok {
		auth = &session
	}

	session, err := h.Service.Start(c.Request.Context(), auth, input.HandoffToken)
	if err != nil {
		h.Logger.Error("failed to start wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current wizard state.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateDraft replaces the session draft with the client's edits.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdateDraft(c.Request.Context(), c.Param("sessionID"), draft)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextStep advances the wizard. Leaving step 2 unauthenticated opens the
// sign-in modal instead of advancing; the session in the response carries the
// modal state.
func (h *WizardHandler) NextStep(c *gin.Context) {
	session, err := h.Service.Next(c.Request.Context(), c.Param("sessionID"))
	switch {
	case errors.Is(err, wizard.ErrAuthRequired):
		c.JSON(http.StatusOK, gin.H{"session": session, "authRequired": true})
	case errors.Is(err, wizard.ErrStepIncomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"session": session, "error": err.Error()})
	case errors.Is(err, wizard.ErrPaymentRequired):
		c.JSON(http.StatusConflict, gin.H{"session": session, "error": err.Error()})
	case err != nil:
		h.respondWizardError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"session": session})
	}
}

// PrevStep moves one step back without validation.
func (h *WizardHandler) PrevStep(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Authenticate marks the wizard session as signed in and completes a pending
// step-2 advance. Requires an authenticated caller.
func (h *WizardHandler) Authenticate(c *gin.Context) {
	auth, ok := middleware.AuthSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	session, err := h.Service.Authenticate(c.Request.Context(), c.Param("sessionID"), auth)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// DismissAuthModal closes the sign-in interrupt without authenticating.
func (h *WizardHandler) DismissAuthModal(c *gin.Context) {
	session, err := h.Service.DismissAuthModal(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// StartPayment runs the payment sub-flow for the selected method. Payment
// errors are carried on the session's payment state, not as HTTP errors, so
// the customer can retry or switch methods.
func (h *WizardHandler) StartPayment(c *gin.Context) {
	var input struct {
		Method models.PaymentMethod `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.StartPayment(c.Request.Context(), c.Param("sessionID"), input.Method)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitBooking finalizes the booking from the confirmation step.
func (h *WizardHandler) SubmitBooking(c *gin.Context) {
	booking, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelSession abandons the wizard session.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// QuickBook stores a partial draft from the landing page form and returns the
// handoff token the wizard claims on start.
func (h *WizardHandler) QuickBook(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := wizard.SaveQuickBookDraft(c.Request.Context(), draft)
	if err != nil {
		h.Logger.Error("failed to store quick-book draft", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"handoffToken": token})
}

func (h *WizardHandler) respondWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrNotConfirmationStep),
		errors.Is(err, wizard.ErrAlreadySubmitting):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
