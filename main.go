package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mockview/config"
	"mockview/database"
	notificationRepoPkg "mockview/database/repository/notification"
	paymentRepoPkg "mockview/database/repository/payment"
	sessionRepoPkg "mockview/database/repository/session"
	userRepoPkg "mockview/database/repository/user"
	"mockview/handlers"
	"mockview/middleware"
	"mockview/routes"
	"mockview/services/assignment"
	"mockview/services/booking"
	"mockview/services/meeting"
	"mockview/services/notification"
	sessionService "mockview/services/session"
	userService "mockview/services/user"
	"mockview/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitLeaseClient()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	users := userRepoPkg.NewMongoUserRepo()
	sessions := sessionRepoPkg.NewMongoSessionRepo()
	payments := paymentRepoPkg.NewMongoPaymentRepo()
	notifications := notificationRepoPkg.NewMongoNotificationRepo()

	// meeting provider: google meet when credentials are configured,
	// disabled otherwise.
	var meetings meeting.Provider = meeting.Disabled{}
	if config.AppConfig.GoogleCredentialsFile != "" {
		provider, err := meeting.NewGoogleMeetProvider(
			context.Background(),
			config.AppConfig.GoogleCredentialsFile,
			config.AppConfig.GoogleCalendarID,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize meeting provider: %v", err)
		}
		meetings = provider
	}

	// services.
	notifier := &notification.DefaultNotificationService{
		Users: users,
		Repo:  notifications,
		FCM:   utils.FCMClient,
	}
	assignmentSvc := &assignment.DefaultAssignmentService{
		UserRepo:    users,
		SessionRepo: sessions,
	}
	smartBooking := booking.NewSmartBookingService(
		assignmentSvc,
		sessions,
		payments,
		users,
		meetings,
		notifier,
		booking.NewRedisSlotLocker(utils.GetLeaseClient()),
	)
	sessionSvc := sessionService.NewSessionService(sessions, users, assignmentSvc, meetings, notifier)
	userSvc := userService.NewUserService(users)

	handlerBundle := handlers.NewHandlerBundle(
		userSvc,
		assignmentSvc,
		smartBooking,
		sessionSvc,
		notifications,
		payments,
	)
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
