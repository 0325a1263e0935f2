package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mockview/handlers"
	"mockview/middleware"
	"mockview/models"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterMentorRoutes registers mentor discovery endpoints.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentors")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListMentorsHandler)
		api.GET("/:id/calendar", hb.MentorCalendarHandler)
	}
}

// RegisterSmartBookingRoutes registers the auto-assignment booking endpoints.
func RegisterSmartBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/smart-booking")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/available-slots", hb.AvailableSlotsHandler)
		api.POST("/book", middleware.RequireRole(models.RoleCandidate), hb.BookSmartHandler)
	}
}

// RegisterSessionRoutes registers the session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RoleCandidate), hb.BookSessionHandler)
		api.GET("", hb.ListMySessionsHandler)
		api.GET("/:id", hb.GetSessionHandler)
		api.PUT("/:id/approve", middleware.RequireRole(models.RoleMentor), hb.ApproveSessionHandler)
		api.PUT("/:id/start", hb.StartSessionHandler)
		api.PUT("/:id/complete", middleware.RequireRole(models.RoleMentor), hb.CompleteSessionHandler)
		api.PUT("/:id/cancel", hb.CancelSessionHandler)
		api.PUT("/:id/reschedule", hb.RescheduleSessionHandler)
		api.PUT("/:id/reassign", middleware.RequireRole(models.RoleAdmin), hb.ReassignSessionHandler)
	}
}

// RegisterPricingRoutes registers the public pricing endpoint.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/pricing", hb.PricingHandler)
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterPaymentRoutes registers payment record endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.RecordPaymentHandler)
		api.GET("", hb.ListPaymentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Mockview"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterMentorRoutes(r, hb)
	RegisterSmartBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
