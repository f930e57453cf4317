package schedule

import (
	"turfbook/models"
)

// OperatingHours describes the daily window during which the facility is
// closed and no slot may start or end. Values are minutes since midnight.
type OperatingHours struct {
	ClosedStartMin int
	ClosedEndMin   int
}

// DefaultOperatingHours closes the facility 02:00-05:30.
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{ClosedStartMin: 2 * 60, ClosedEndMin: 5*60 + 30}
}

// IsSlotAvailable decides whether a candidate slot can be booked given the
// non-rejected bookings for the candidate's court on the previous, same and
// next calendar day. Callers are responsible for pre-filtering bookings to
// that 3-day window; dates outside it are ignored here.
//
// The candidate and every booking are projected onto a single minute
// timeline anchored at the candidate date's midnight: previous-day bookings
// are offset by -MinutesPerDay, next-day bookings by +MinutesPerDay, and any
// interval whose end time is <= its start time extends past midnight. A
// single half-open overlap test then covers all midnight-crossing cases.
//
// Invalid input yields false, never an error: this is a predicate used for
// optimistic UI rendering as well as the server-side commit check.
func IsSlotAvailable(date, startTime string, durationHours float64, existing []models.Booking, hours OperatingHours) bool {
	if date == "" || startTime == "" || durationHours <= 0 {
		return false
	}
	if _, err := ParseDate(date); err != nil {
		return false
	}
	slotStart, err := TimeToMinutes(startTime)
	if err != nil {
		return false
	}

	// Unwrapped end; may extend past MinutesPerDay into the next day.
	slotEnd := slotStart + durationMinutes(durationHours)
	wrappedEnd := slotEnd % MinutesPerDay

	// Non-operating hours reject the slot outright, independent of bookings.
	if slotStart >= hours.ClosedStartMin && slotStart < hours.ClosedEndMin {
		return false
	}
	if wrappedEnd > hours.ClosedStartMin && wrappedEnd <= hours.ClosedEndMin {
		return false
	}

	prevDay, err := ShiftDate(date, -1)
	if err != nil {
		return false
	}
	nextDay, err := ShiftDate(date, 1)
	if err != nil {
		return false
	}

	for _, b := range existing {
		var offset int
		switch b.Date {
		case date:
			offset = 0
		case prevDay:
			offset = -MinutesPerDay
		case nextDay:
			offset = MinutesPerDay
		default:
			continue
		}

		bStart, err := TimeToMinutes(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := TimeToMinutes(b.EndTime)
		if err != nil {
			continue
		}
		if bEnd <= bStart {
			bEnd += MinutesPerDay
		}
		bStart += offset
		bEnd += offset

		// Half-open intervals: back-to-back slots do not conflict.
		if slotStart < bEnd && slotEnd > bStart {
			return false
		}
	}
	return true
}
