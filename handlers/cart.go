package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingService "turfbook/services/booking"
)

// cartError maps service errors onto HTTP responses.
func cartError(c *gin.Context, err error) {
	logger := getLogger(c)

	if errors.Is(err, bookingService.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var verr *bookingService.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	var cerr *bookingService.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Error()})
		return
	}
	logger.Error("Cart operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// CreateCartHandler starts a new empty cart session for the caller.
func CreateCartHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("userID")
		uid, _ := userID.(string)

		sessionID, session, err := svc.CreateSession(c.Request.Context(), uid)
		if err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"sessionID": sessionID, "cart": session})
	}
}

// GetCartHandler returns the current cart contents and total.
func GetCartHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")

		session, err := svc.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": session, "total": session.Total()})
	}
}

// AddCartItemHandler validates, prices and appends a candidate slot.
func AddCartItemHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")

		var input bookingService.CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.AddItem(c.Request.Context(), sessionID, input)
		if err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": session, "total": session.Total()})
	}
}

// RemoveCartItemHandler drops one item from the cart.
func RemoveCartItemHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		itemID := c.Param("itemID")

		session, err := svc.RemoveItem(c.Request.Context(), sessionID, itemID)
		if err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": session, "total": session.Total()})
	}
}

// CheckoutHandler re-validates every cart item and commits the bookings.
// With pay=true it also returns a Stripe payment link for the cart total.
func CheckoutHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")

		var req struct {
			Pay bool `json:"pay"`
		}
		// An empty body means checkout without an online payment.
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
				return
			}
		}

		result, err := svc.Checkout(c.Request.Context(), sessionID, req.Pay)
		if err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
