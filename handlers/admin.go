package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "turfbook/database/repository/booking"
)

// ApproveBookingHandler marks a pending booking as approved.
func ApproveBookingHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return setApprovalHandler(repo, true, "approved")
}

// RejectBookingHandler marks a booking as rejected, freeing its slot for
// other customers.
func RejectBookingHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return setApprovalHandler(repo, false, "rejected")
}

func setApprovalHandler(repo bookingRepo.BookingRepository, approved bool, verb string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		if err := repo.SetApproval(id, approved); err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			logger.Error("Failed to update booking approval",
				zap.String("bookingID", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "booking " + verb, "id": id})
	}
}

// DeleteBookingHandler removes a booking record entirely. The booking is
// fetched first so the response can echo what was removed.
func DeleteBookingHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		booking, err := repo.GetByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		if err := repo.Delete(id); err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			logger.Error("Failed to delete booking",
				zap.String("bookingID", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "booking deleted", "booking": booking})
	}
}
