// File: menagio/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"menagio/handlers"
	"menagio/middleware"
	"menagio/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and authentication endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.SignOutUserHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
		api.POST("/me/avatar", hb.UploadAvatarHandler)
	}
}

// RegisterWizardRoutes registers the booking wizard endpoints. Starting and
// driving the wizard is open to anonymous visitors; the sign-in interrupt at
// step 2 is handled inside the flow.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/quick-book", hb.QuickBookHandler)
		api.POST("/session", hb.StartWizardSession)
		api.GET("/session/:sessionID", hb.GetWizardSession)
		api.PUT("/session/:sessionID/draft", hb.UpdateWizardDraft)
		api.POST("/session/:sessionID/next", hb.WizardNextStep)
		api.POST("/session/:sessionID/back", hb.WizardPrevStep)
		api.POST("/session/:sessionID/dismiss-auth", hb.WizardDismissAuth)
		api.DELETE("/session/:sessionID", hb.CancelWizardSession)

		// Completing the flow requires a signed-in caller.
		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware())
		authed.POST("/session/:sessionID/authenticate", hb.WizardAuthenticate)
		authed.POST("/session/:sessionID/payment", hb.WizardStartPayment)
		authed.POST("/session/:sessionID/submit", hb.WizardSubmitBooking)
	}
}

// RegisterBookingRoutes registers the customer dashboard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/:bookingID", hb.GetMyBookingHandler)
		api.POST("/:bookingID/cancel", hb.CancelMyBookingHandler)
	}
}

// RegisterQuoteRoutes registers the public quote-request endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/quotes", hb.CreateQuoteRequestHandler)
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
		api.GET("/bookings", hb.AdminHandler.ListBookings)
		api.PATCH("/bookings/:bookingID/status", hb.AdminHandler.SetBookingStatus)
		api.GET("/clients", hb.AdminHandler.ListClients)
		api.GET("/quotes", hb.AdminHandler.ListQuotes)
		api.PATCH("/quotes/:quoteID/status", hb.AdminHandler.SetQuoteStatus)
		api.GET("/stats", hb.AdminHandler.GetDashboardStats)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
