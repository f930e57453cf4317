package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turfbook/models"
)

func TestFormatTime12(t *testing.T) {
	assert.Equal(t, "12:00 AM", formatTime12("00:00"))
	assert.Equal(t, "5:30 PM", formatTime12("17:30"))
	assert.Equal(t, "12:15 PM", formatTime12("12:15"))
	assert.Equal(t, "11:59 PM", formatTime12("23:59"))
	// Malformed values pass through untouched.
	assert.Equal(t, "bogus", formatTime12("bogus"))
}

func TestFormatBookingAlert(t *testing.T) {
	msg := FormatBookingAlert(models.BookingNotification{
		BookingID:    "b-1",
		CustomerName: "Ravi",
		Sport:        "Cricket",
		Date:         "2024-06-10",
		StartTime:    "17:30",
		EndTime:      "19:00",
		PeopleCount:  8,
		Price:        1350,
		CourtName:    "Court A",
	})

	assert.Contains(t, msg, "Ravi")
	assert.Contains(t, msg, "Cricket")
	assert.Contains(t, msg, "Court A")
	assert.Contains(t, msg, "5:30 PM - 7:00 PM (Jun 10)")
	assert.Contains(t, msg, "₹1350")
}
