package notification

import (
	"context"

	"turfbook/models"
)

// NotificationService delivers booking alerts to the facility staff.
type NotificationService interface {
	SendBookingAlert(ctx context.Context, n models.BookingNotification) error
}
