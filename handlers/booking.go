package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "turfbook/database/repository/booking"
	bookingService "turfbook/services/booking"
)

// ListBookingsHandler returns bookings. With ?courtId= and ?dates= (comma
// separated) it serves the conflict-check feed the booking form polls: that
// court's non-rejected bookings on the listed dates. Without filters it
// returns every booking joined with its court name, newest first, for the
// schedule board.
func ListBookingsHandler(repo bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		courtIDParam := c.Query("courtId")
		datesParam := c.Query("dates")
		if courtIDParam != "" || datesParam != "" {
			courtID, err := strconv.Atoi(courtIDParam)
			if err != nil || courtID <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
				return
			}
			var dates []string
			for _, d := range strings.Split(datesParam, ",") {
				if d = strings.TrimSpace(d); d != "" {
					dates = append(dates, d)
				}
			}
			if len(dates) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "dates parameter is required"})
				return
			}

			bookings, err := repo.GetByCourtAndDates(courtID, dates)
			if err != nil {
				logger.Error("Failed to fetch bookings for court", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"bookings": bookings})
			return
		}

		bookings, err := repo.GetAll()
		if err != nil {
			logger.Error("Failed to list bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// CheckAvailabilityHandler answers the live slot-availability poll from the
// booking form.
func CheckAvailabilityHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var q bookingService.SlotQuery
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		available, err := svc.CheckAvailability(q)
		if err != nil {
			var verr *bookingService.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Availability check failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "availability check failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"available": available})
	}
}

// QuotePriceHandler returns the live price estimate for a candidate slot.
func QuotePriceHandler(svc bookingService.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q bookingService.SlotQuery
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"price": svc.QuotePrice(q)})
	}
}
