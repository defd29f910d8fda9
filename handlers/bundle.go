// File: menagio/handlers/handlerBundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Wizard endpoints
	StartWizardSession  gin.HandlerFunc
	GetWizardSession    gin.HandlerFunc
	UpdateWizardDraft   gin.HandlerFunc
	WizardNextStep      gin.HandlerFunc
	WizardPrevStep      gin.HandlerFunc
	WizardAuthenticate  gin.HandlerFunc
	WizardDismissAuth   gin.HandlerFunc
	WizardStartPayment  gin.HandlerFunc
	WizardSubmitBooking gin.HandlerFunc
	CancelWizardSession gin.HandlerFunc
	QuickBookHandler    gin.HandlerFunc

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	SignOutUserHandler      gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc
	UploadAvatarHandler     gin.HandlerFunc

	// Customer booking endpoints
	ListMyBookingsHandler  gin.HandlerFunc
	GetMyBookingHandler    gin.HandlerFunc
	CancelMyBookingHandler gin.HandlerFunc

	// Quote endpoints
	CreateQuoteRequestHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
