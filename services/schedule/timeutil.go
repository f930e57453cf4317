package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerDay is the length of one wall-clock day.
	MinutesPerDay = 24 * 60

	dateLayout = "2006-01-02"
)

// TimeToMinutes converts an "HH:MM" (24-hour) string to minutes since
// midnight. The hour may be written with or without a leading zero.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", t)
	}
	return h*60 + m, nil
}

// MinutesToTime formats minutes since midnight as "HH:MM", wrapping values
// past the end of the day.
func MinutesToTime(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// ShiftDate returns the calendar date offset by the given number of days.
func ShiftDate(date string, days int) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, days).Format(dateLayout), nil
}

// EndTimeOf computes the wall-clock end time of a slot, wrapped past
// midnight when the slot spills into the next day.
func EndTimeOf(startTime string, durationHours float64) (string, error) {
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return "", err
	}
	return MinutesToTime(start + durationMinutes(durationHours)), nil
}

// durationMinutes converts a fractional hour count to whole minutes.
func durationMinutes(durationHours float64) int {
	return int(durationHours*60 + 0.5)
}
