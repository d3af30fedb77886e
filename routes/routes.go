package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wintermarket/config"
	"wintermarket/handlers"
	"wintermarket/middleware"
)

// RegisterCalendarRoutes registers the public calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine) {
	api := r.Group("/api/calendar")
	{
		api.GET("/events", handlers.GetCalendarEvents)
		api.GET("/events/:id", handlers.GetEvent)
		api.GET("/availability", handlers.GetAvailability)
		api.GET("/themes", handlers.GetThemeWindows)
	}
}

// RegisterSelectionRoutes registers the date-selection session endpoints.
func RegisterSelectionRoutes(r *gin.Engine) {
	api := r.Group("/api/selection")
	{
		api.POST("/session", handlers.StartSelection)
		api.GET("/session/:sessionID", handlers.GetSelection)
		api.POST("/session/:sessionID/toggle", handlers.ToggleDate)
		api.DELETE("/session/:sessionID/dates", handlers.ClearSelection)
		api.PUT("/session/:sessionID/mode", handlers.SwitchMode)
		api.POST("/session/:sessionID/build", handlers.BuildBookingSession)
	}
}

// RegisterBookingRoutes registers reservation and checkout endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/booking")
	{
		api.POST("/reserve", handlers.ReserveSingle)
		api.POST("/reserve/multi", handlers.ReserveMulti)
		api.GET("/status/:sessionID", handlers.BookingStatus)
		api.POST("/photo", handlers.UploadVendorPhoto)
	}
}

// RegisterWebhookRoutes registers the Stripe webhook endpoint. No rate
// limiting here, Stripe retries aggressively on failures.
func RegisterWebhookRoutes(r *gin.Engine) {
	r.POST("/api/webhooks/stripe", handlers.StripeWebhook)
}

// RegisterAdminRoutes registers organizer-only endpoints.
func RegisterAdminRoutes(r *gin.Engine) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", handlers.AdminLogin)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/bookings", handlers.ListBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "winter market api"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCalendarRoutes(r)
	RegisterSelectionRoutes(r)
	RegisterBookingRoutes(r)
	RegisterWebhookRoutes(r)
	RegisterAdminRoutes(r)
}
