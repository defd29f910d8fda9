// File: menagio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menagio/config"
	"menagio/cron"
	"menagio/database"
	bookingRepoPkg "menagio/database/repository/booking"
	quoteRepoPkg "menagio/database/repository/quote"
	userRepoPkg "menagio/database/repository/user"
	"menagio/handlers"
	"menagio/middleware"
	"menagio/routes"
	"menagio/services/admin"
	"menagio/services/booking"
	"menagio/services/notification"
	"menagio/services/user"
	"menagio/services/wizard"
	"menagio/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	// The asynq worker owns the queue DB; health checks ping it directly.
	queuePing := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, map[string]*redis.Client{
		"sessions": utils.GetCacheClient(),
		"auth":     utils.GetAuthCacheClient(),
		"drafts":   utils.GetDraftCacheClient(),
		"queue":    queuePing,
	}, database.MongoClient)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	quoteRepo := quoteRepoPkg.NewMongoQuoteRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
	}

	// background queue + notifications.
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	notificationService := &notification.DefaultNotificationService{
		Users:  userRepo,
		Queue:  queueClient,
		Logger: logger,
	}
	go cron.InitNotificationWorker(notificationService)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	wizardService := &wizard.DefaultWizardService{
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Sessions:    wizard.NewRedisSessionStore(),
		Payments:    wizard.NewPaymentProcessor(logger),
		Notifier:    notificationService,
		Logger:      logger,
	}

	customerBookingService := &booking.DefaultCustomerBookingService{
		Repo:     bookingRepo,
		Notifier: notificationService,
		Logger:   logger,
	}

	statusService := &admin.DefaultStatusService{
		Bookings: bookingRepo,
		Quotes:   quoteRepo,
		Notifier: notificationService,
		Logger:   logger,
	}

	// handlers.
	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	bookingHandler := handlers.NewCustomerBookingHandler(customerBookingService, logger)
	quoteHandler := handlers.NewQuoteHandler(quoteRepo, logger)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService, userService, logger)
	adminHandler := handlers.NewAdminHandler(statusService, func() *admin.Console {
		return admin.NewConsole(bookingRepo, userRepo, quoteRepo, logger)
	}, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Wizard endpoints.
		StartWizardSession:  wizardHandler.StartSession,
		GetWizardSession:    wizardHandler.GetSession,
		UpdateWizardDraft:   wizardHandler.UpdateDraft,
		WizardNextStep:      wizardHandler.NextStep,
		WizardPrevStep:      wizardHandler.PrevStep,
		WizardAuthenticate:  wizardHandler.Authenticate,
		WizardDismissAuth:   wizardHandler.DismissAuthModal,
		WizardStartPayment:  wizardHandler.StartPayment,
		WizardSubmitBooking: wizardHandler.SubmitBooking,
		CancelWizardSession: wizardHandler.CancelSession,
		QuickBookHandler:    wizardHandler.QuickBook,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUser,
		AuthenticateUserHandler: userHandler.AuthenticateUser,
		SignOutUserHandler:      userHandler.SignOutUser,
		GetProfileHandler:       userHandler.GetProfile,
		UpdateProfileHandler:    userHandler.UpdateProfile,
		UpdateFCMTokenHandler:   userHandler.UpdateFCMToken,
		UploadAvatarHandler:     storageHandler.UploadAvatar,

		// Customer booking endpoints.
		ListMyBookingsHandler:  bookingHandler.ListMyBookings,
		GetMyBookingHandler:    bookingHandler.GetMyBooking,
		CancelMyBookingHandler: bookingHandler.CancelMyBooking,

		// Quote endpoints.
		CreateQuoteRequestHandler: quoteHandler.CreateQuoteRequest,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
