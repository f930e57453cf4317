package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"turfbook/models"
	"turfbook/services/schedule"
	"turfbook/services/tasks"
	"turfbook/utils"
)

// Checkout commits every cart item as a pending booking. Each item is
// re-validated against freshly queried storage state immediately before its
// insert; this narrows, but does not eliminate, the window for a race
// between two concurrent reservations of the same slot. Closing it fully
// would need a uniqueness constraint or serializable transaction at the
// storage layer.
//
// When pay is true a Stripe payment link for the cart total is attached to
// the result; reservation itself never depends on payment succeeding.
func (s *DefaultBookingSessionService) Checkout(ctx context.Context, sessionID string, pay bool) (*CheckoutResult, error) {
	logger := utils.GetLogger()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "cart is empty"}
	}

	var booked []models.Booking
	for _, item := range session.Items {
		existing, err := s.bookingsAround(item.CourtID, item.Date)
		if err != nil {
			return nil, err
		}
		if !schedule.IsSlotAvailable(item.Date, item.StartTime, item.DurationHours, existing, s.Hours) {
			return nil, &ConflictError{Date: item.Date, StartTime: item.StartTime, CourtID: item.CourtID}
		}

		b := models.Booking{
			ID:              uuid.New().String(),
			CustomerName:    item.CustomerName,
			Sport:           item.Sport,
			PeopleCount:     item.PeopleCount,
			Date:            item.Date,
			StartTime:       item.StartTime,
			EndTime:         item.EndTime,
			DurationMinutes: int(item.DurationHours*60 + 0.5),
			CourtID:         item.CourtID,
			Price:           item.Price,
			Approved:        nil, // pending admin review
		}
		if err := s.Repo.Create(&b); err != nil {
			return nil, fmt.Errorf("failed to commit booking: %w", err)
		}
		booked = append(booked, b)

		s.enqueueNotification(item, b)
	}

	result := &CheckoutResult{Bookings: booked}
	if pay && s.Payments != nil {
		url, err := s.Payments.CreatePaymentLink(ctx, session)
		if err != nil {
			// The reservation is already committed; payment can be retried.
			logger.Error("Checkout: failed to create payment link",
				zap.String("sessionID", sessionID), zap.Error(err))
		} else {
			result.PaymentURL = url
		}
	}

	if err := s.Cache.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		logger.Warn("Checkout: failed to clear cart session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return result, nil
}

// enqueueNotification hands the booking off to the Telegram worker.
// Notification failure never fails a booking.
func (s *DefaultBookingSessionService) enqueueNotification(item models.CartItem, b models.Booking) {
	if s.TaskQueue == nil {
		return
	}
	payload := models.BookingNotification{
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Sport:        b.Sport,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		PeopleCount:  b.PeopleCount,
		Price:        b.Price,
		CourtName:    item.CourtName,
	}
	task, err := tasks.NewBookingNotifyTask(payload)
	if err != nil {
		utils.GetLogger().Error("failed to build notification task", zap.Error(err))
		return
	}
	if _, err := s.TaskQueue.Enqueue(task); err != nil {
		utils.GetLogger().Error("failed to enqueue notification task",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
