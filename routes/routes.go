package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"turfbook/handlers"
	"turfbook/middleware"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetUserByIDHandler)
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterCourtRoutes registers court listing endpoints.
func RegisterCourtRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courts")
	{
		api.GET("", hb.ListCourtsHandler)
		api.GET("/:id", hb.GetCourtByIDHandler)
	}
}

// RegisterBookingRoutes sets up the schedule board, availability and quote
// endpoints plus the cart flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// The schedule board and the live booking-form checks are public.
		api.GET("", hb.ListBookingsHandler)
		api.POST("/check", hb.CheckAvailabilityHandler)
		api.POST("/quote", hb.QuotePriceHandler)
	}

	cart := r.Group("/api/cart")
	{
		cart.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		cart.POST("/session", hb.CreateCartHandler)
		cart.GET("/session/:sessionID", hb.GetCartHandler)
		cart.POST("/session/:sessionID/items", hb.AddCartItemHandler)
		cart.DELETE("/session/:sessionID/items/:itemID", hb.RemoveCartItemHandler)
		cart.POST("/session/:sessionID/checkout", hb.CheckoutHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for booking moderation and court
// management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.AdminOnlyMiddleware())
		adminGroup.PUT("/bookings/:id/approve", hb.ApproveBookingHandler)
		adminGroup.PUT("/bookings/:id/reject", hb.RejectBookingHandler)
		adminGroup.DELETE("/bookings/:id", hb.DeleteBookingHandler)
		adminGroup.POST("/courts", hb.CreateCourtHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterCourtRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
