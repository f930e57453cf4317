package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turfbook/models"
)

func booking(date, start, end string) models.Booking {
	return models.Booking{Date: date, StartTime: start, EndTime: end, CourtID: 1}
}

func TestIsSlotAvailable_NoBookings(t *testing.T) {
	hours := DefaultOperatingHours()

	assert.True(t, IsSlotAvailable("2024-06-10", "10:00", 1.5, nil, hours))
	assert.True(t, IsSlotAvailable("2024-06-10", "18:00", 4, []models.Booking{}, hours))
}

func TestIsSlotAvailable_NonOperatingHours(t *testing.T) {
	hours := DefaultOperatingHours()

	// 01:45-02:15 overlaps the closed window.
	assert.False(t, IsSlotAvailable("2024-06-10", "01:45", 0.5, nil, hours))
	// Start inside the closed window.
	assert.False(t, IsSlotAvailable("2024-06-10", "03:00", 1, nil, hours))
	// End exactly at the window open boundary is fine.
	assert.True(t, IsSlotAvailable("2024-06-10", "01:00", 1, nil, hours))
	// Start exactly when the facility reopens is fine.
	assert.True(t, IsSlotAvailable("2024-06-10", "05:30", 1, nil, hours))
}

func TestIsSlotAvailable_SameDayOverlap(t *testing.T) {
	hours := DefaultOperatingHours()
	existing := []models.Booking{booking("2024-06-10", "10:00", "12:00")}

	// Fully inside the booking.
	assert.False(t, IsSlotAvailable("2024-06-10", "10:30", 1, existing, hours))
	// Partial overlap on either edge.
	assert.False(t, IsSlotAvailable("2024-06-10", "09:30", 1, existing, hours))
	assert.False(t, IsSlotAvailable("2024-06-10", "11:30", 1, existing, hours))
	// Candidate entirely containing the booking.
	assert.False(t, IsSlotAvailable("2024-06-10", "09:00", 4, existing, hours))
}

func TestIsSlotAvailable_BackToBack(t *testing.T) {
	hours := DefaultOperatingHours()
	existing := []models.Booking{booking("2024-06-10", "10:00", "12:00")}

	// Half-open semantics: touching endpoints do not conflict.
	assert.True(t, IsSlotAvailable("2024-06-10", "12:00", 1, existing, hours))
	assert.True(t, IsSlotAvailable("2024-06-10", "09:00", 1, existing, hours))
}

func TestIsSlotAvailable_CandidateCrossesMidnight(t *testing.T) {
	hours := DefaultOperatingHours()

	// 23:30-00:30 with nothing booked; wrapped end 00:30 clears the closed window.
	assert.True(t, IsSlotAvailable("2024-06-10", "23:30", 1, nil, hours))

	// Next-day booking 00:15-01:15 overlaps the wrapped tail.
	nextDay := []models.Booking{booking("2024-06-11", "00:15", "01:15")}
	assert.False(t, IsSlotAvailable("2024-06-10", "23:30", 1, nextDay, hours))

	// Next-day booking starting exactly at the wrapped end is back-to-back.
	touching := []models.Booking{booking("2024-06-11", "00:30", "01:30")}
	assert.True(t, IsSlotAvailable("2024-06-10", "23:30", 1, touching, hours))

	// Same-day booking that itself crosses midnight.
	crossing := []models.Booking{booking("2024-06-10", "23:00", "01:00")}
	assert.False(t, IsSlotAvailable("2024-06-10", "23:30", 1, crossing, hours))
}

func TestIsSlotAvailable_PreviousDayCrossingBooking(t *testing.T) {
	hours := DefaultOperatingHours()
	existing := []models.Booking{booking("2024-06-10", "23:00", "01:00")}

	// 00:30-01:30 the following day collides with the booking's tail.
	assert.False(t, IsSlotAvailable("2024-06-11", "00:30", 1, existing, hours))
	// A midday slot the following day is clear.
	assert.True(t, IsSlotAvailable("2024-06-11", "12:00", 1, existing, hours))
	// Starting exactly where the tail ends is back-to-back.
	assert.True(t, IsSlotAvailable("2024-06-11", "01:00", 0.5, existing, hours))
}

func TestIsSlotAvailable_UnpaddedHoursCompareNumerically(t *testing.T) {
	hours := DefaultOperatingHours()

	// "10:15" sorts before "9:15" as a string; the morning booking must still
	// read as a plain same-day slot, not one spilling past midnight.
	existing := []models.Booking{booking("2024-06-10", "9:15", "10:15")}

	assert.False(t, IsSlotAvailable("2024-06-10", "9:30", 0.5, existing, hours))
	assert.True(t, IsSlotAvailable("2024-06-10", "10:15", 1, existing, hours))
	// If the booking wrongly wrapped, its tail would cover the next morning.
	assert.True(t, IsSlotAvailable("2024-06-11", "1:00", 1, existing, hours))
}

func TestIsSlotAvailable_IgnoresUnrelatedDates(t *testing.T) {
	hours := DefaultOperatingHours()
	existing := []models.Booking{
		booking("2024-06-01", "10:00", "12:00"),
		booking("2024-06-20", "10:00", "12:00"),
	}

	assert.True(t, IsSlotAvailable("2024-06-10", "10:00", 2, existing, hours))
}

func TestIsSlotAvailable_InvalidInputFailsClosed(t *testing.T) {
	hours := DefaultOperatingHours()

	assert.False(t, IsSlotAvailable("", "10:00", 1, nil, hours))
	assert.False(t, IsSlotAvailable("2024-06-10", "", 1, nil, hours))
	assert.False(t, IsSlotAvailable("2024-06-10", "10:00", 0, nil, hours))
	assert.False(t, IsSlotAvailable("2024-06-10", "10:00", -1, nil, hours))
	assert.False(t, IsSlotAvailable("not-a-date", "10:00", 1, nil, hours))
	assert.False(t, IsSlotAvailable("2024-06-10", "25:00", 1, nil, hours))
	assert.False(t, IsSlotAvailable("2024-06-10", "10:xx", 1, nil, hours))
}

func TestIsSlotAvailable_SkipsMalformedStoredBookings(t *testing.T) {
	hours := DefaultOperatingHours()
	existing := []models.Booking{booking("2024-06-10", "bogus", "12:00")}

	assert.True(t, IsSlotAvailable("2024-06-10", "10:00", 1, existing, hours))
}
