// File: menagio/handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"menagio/middleware"
	"menagio/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerBookingHandler exposes the customer dashboard's booking endpoints.
type CustomerBookingHandler struct {
	Service booking.CustomerBookingService
	Logger  *zap.Logger
}

// NewCustomerBookingHandler wires the customer booking service into HTTP handlers.
func NewCustomerBookingHandler(svc booking.CustomerBookingService, logger *zap.Logger) *CustomerBookingHandler {
	return &CustomerBookingHandler{Service: svc, Logger: logger}
}

// ListMyBookings returns the caller's bookings, newest first.
func (h *CustomerBookingHandler) ListMyBookings(c *gin.Context) {
	auth, ok := middleware.AuthSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	bookings, err := h.Service.ListMine(c.Request.Context(), auth.UserID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("user", auth.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetMyBooking returns one of the caller's bookings.
func (h *CustomerBookingHandler) GetMyBooking(c *gin.Context) {
	auth, ok := middleware.AuthSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	b, err := h.Service.GetMine(c.Request.Context(), auth.UserID, c.Param("bookingID"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelMyBooking cancels one of the caller's bookings, subject to the status
// and 24h policies.
func (h *CustomerBookingHandler) CancelMyBooking(c *gin.Context) {
	auth, ok := middleware.AuthSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	b, err := h.Service.CancelMine(c.Request.Context(), auth.UserID, c.Param("bookingID"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *CustomerBookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotCancellable), errors.Is(err, booking.ErrTooLateToCancel):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
