package bookingRepo

import (
	"turfbook/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings joined with their court names, newest first.
	GetAll() ([]models.BookingWithCourt, error)
	// GetByCourtAndDates retrieves the non-rejected bookings for a court on
	// the given calendar dates. This is the conflict-check feed: rejected
	// bookings never block a slot.
	GetByCourtAndDates(courtID int, dates []string) ([]models.Booking, error)
	// SetApproval flips the approval flag on a booking.
	SetApproval(id string, approved bool) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
