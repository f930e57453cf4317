package handlers

import (
	userRepoPkg "turfbook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetUserByIDHandler         gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Court endpoints
	ListCourtsHandler   gin.HandlerFunc
	GetCourtByIDHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler      gin.HandlerFunc
	CheckAvailabilityHandler gin.HandlerFunc
	QuotePriceHandler        gin.HandlerFunc

	// Cart endpoints
	CreateCartHandler     gin.HandlerFunc
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc
	CheckoutHandler       gin.HandlerFunc

	// Admin endpoints
	ApproveBookingHandler gin.HandlerFunc
	RejectBookingHandler  gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc
	CreateCourtHandler    gin.HandlerFunc
}
