// File: menagio/handlers/admin.go
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"menagio/middleware"
	"menagio/models"
	"menagio/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office list and status endpoints. Each admin
// gets a Console whose list controllers hold that admin's filter, search and
// pagination state for as long as they stay signed in.
type AdminHandler struct {
	Status admin.StatusService
	Logger *zap.Logger

	mu         sync.Mutex
	consoles   map[string]*admin.Console
	newConsole func() *admin.Console
}

// NewAdminHandler wires the status service and a console factory into HTTP handlers.
func NewAdminHandler(status admin.StatusService, newConsole func() *admin.Console, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Status:     status,
		Logger:     logger,
		consoles:   make(map[string]*admin.Console),
		newConsole: newConsole,
	}
}

func (h *AdminHandler) console(adminID string) *admin.Console {
	h.mu.Lock()
	defer h.mu.Unlock()
	console, ok := h.consoles[adminID]
	if !ok {
		console = h.newConsole()
		h.consoles[adminID] = console
	}
	return console
}

// serveList applies the request's search/status/page parameters to the
// controller and returns the resulting page. Changing the search or filter
// resets the page; a bare request reloads the current page.
func serveList[T any](c *gin.Context, ctrl *admin.ListController[T], logger *zap.Logger) {
	ctx := c.Request.Context()
	current := ctrl.Query()

	var err error
	switch {
	case c.Query("search") != current.Search && c.Request.URL.Query().Has("search"):
		err = ctrl.SetSearch(ctx, c.Query("search"))
	case c.Query("status") != current.Status && c.Request.URL.Query().Has("status"):
		err = ctrl.SetStatusFilter(ctx, c.Query("status"))
	case c.Request.URL.Query().Has("page"):
		page, convErr := strconv.Atoi(c.Query("page"))
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		err = ctrl.SetPage(ctx, page)
	default:
		err = ctrl.Reload(ctx)
	}
	if err != nil {
		logger.Error("failed to load admin list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":       ctrl.Rows(),
		"total":      ctrl.Total(),
		"page":       ctrl.Page(),
		"totalPages": ctrl.TotalPages(),
		"query":      ctrl.Query(),
	})
}

// ListBookings serves the bookings table.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	auth, _ := middleware.AuthSessionFromContext(c)
	serveList(c, h.console(auth.UserID).Bookings, h.Logger)
}

// ListClients serves the clients table.
func (h *AdminHandler) ListClients(c *gin.Context) {
	auth, _ := middleware.AuthSessionFromContext(c)
	serveList(c, h.console(auth.UserID).Clients, h.Logger)
}

// ListQuotes serves the quote-requests table.
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	auth, _ := middleware.AuthSessionFromContext(c)
	serveList(c, h.console(auth.UserID).Quotes, h.Logger)
}

// SetBookingStatus applies a status change from the booking table's selector.
// On success the loaded row is patched in place and the refreshed dashboard
// stats are returned with it; on error the table is untouched.
func (h *AdminHandler) SetBookingStatus(c *gin.Context) {
	auth, _ := middleware.AuthSessionFromContext(c)

	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bookingID := c.Param("bookingID")
	updated, stats, err := h.Status.SetBookingStatus(c.Request.Context(), bookingID, input.Status)
	if err != nil {
		h.Logger.Error("failed to update booking status",
			zap.String("booking", bookingID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.console(auth.UserID).Bookings.PatchRow(func(b models.Booking) bool {
		return b.ID == updated.ID
	}, *updated)

	c.JSON(http.StatusOK, gin.H{"booking": updated, "stats": stats})
}

// SetQuoteStatus applies a status change from the quote table's selector.
func (h *AdminHandler) SetQuoteStatus(c *gin.Context) {
	auth, _ := middleware.AuthSessionFromContext(c)

	var input struct {
		Status models.QuoteStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quoteID := c.Param("quoteID")
	updated, err := h.Status.SetQuoteStatus(c.Request.Context(), quoteID, input.Status)
	if err != nil {
		h.Logger.Error("failed to update quote status",
			zap.String("quote", quoteID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.console(auth.UserID).Quotes.PatchRow(func(q models.QuoteRequest) bool {
		return q.ID == updated.ID
	}, *updated)

	c.JSON(http.StatusOK, gin.H{"quote": updated})
}

// GetDashboardStats returns the booking counters and revenue.
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.Status.DashboardStats(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SignOutAdmin drops the admin's console so a fresh sign-in starts with clean
// table state.
func (h *AdminHandler) SignOutAdmin(adminID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.consoles, adminID)
}
