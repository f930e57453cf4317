package booking

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	bookingRepo "turfbook/database/repository/booking"
	courtRepo "turfbook/database/repository/court"
	"turfbook/models"
	"turfbook/services/schedule"
)

// CartItemInput is the customer-supplied candidate slot.
type CartItemInput struct {
	CustomerName  string  `json:"customerName" binding:"required"`
	Sport         string  `json:"sport" binding:"required"`
	PeopleCount   int     `json:"peopleCount" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	StartTime     string  `json:"startTime" binding:"required"`
	DurationHours float64 `json:"durationHours" binding:"required"`
	CourtID       int     `json:"courtId" binding:"required"`
}

// SlotQuery identifies a candidate slot for availability and price quotes.
type SlotQuery struct {
	Date          string  `json:"date" binding:"required"`
	StartTime     string  `json:"startTime" binding:"required"`
	DurationHours float64 `json:"durationHours" binding:"required"`
	CourtID       int     `json:"courtId" binding:"required"`
}

// CheckoutResult reports the bookings committed at checkout and, when
// payment was requested, the Stripe payment link for the cart total.
type CheckoutResult struct {
	Bookings   []models.Booking `json:"bookings"`
	PaymentURL string           `json:"paymentUrl,omitempty"`
}

// BookingSessionService manages redis-backed cart sessions and the
// reservation commit path.
type BookingSessionService interface {
	CreateSession(ctx context.Context, userID string) (string, *models.CartSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.CartSession, error)
	AddItem(ctx context.Context, sessionID string, input CartItemInput) (*models.CartSession, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartSession, error)
	Checkout(ctx context.Context, sessionID string, pay bool) (*CheckoutResult, error)
	CheckAvailability(q SlotQuery) (bool, error)
	QuotePrice(q SlotQuery) int
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Repo      bookingRepo.BookingRepository
	CourtRepo courtRepo.CourtRepository
	Cache     *redis.Client
	TaskQueue *asynq.Client
	Payments  PaymentHandler
	Rates     schedule.RateSchedule
	Hours     schedule.OperatingHours
}
