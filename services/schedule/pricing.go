package schedule

import (
	"math"
	"time"
)

// RateSchedule maps an instant to an hourly rate. Rates step on the
// weekday/weekend boundary and on the day/night boundary; there is no
// interpolation within a window.
type RateSchedule struct {
	WeekdayDay   float64
	WeekdayNight float64
	WeekendDay   float64
	WeekendNight float64

	// Day window bounds in minutes since midnight, half-open [start, end).
	DayStartMin int
	DayEndMin   int
}

// DefaultRateSchedule mirrors the facility's published rates with the day
// window at 06:00-18:00.
func DefaultRateSchedule() RateSchedule {
	return RateSchedule{
		WeekdayDay:   600,
		WeekdayNight: 1000,
		WeekendDay:   600,
		WeekendNight: 1100,
		DayStartMin:  6 * 60,
		DayEndMin:    18 * 60,
	}
}

// RateAt returns the hourly rate in force at the given instant.
func (rs RateSchedule) RateAt(t time.Time) float64 {
	wd := t.Weekday()
	isWeekend := wd == time.Sunday || wd == time.Saturday

	m := t.Hour()*60 + t.Minute()
	isDay := m >= rs.DayStartMin && m < rs.DayEndMin

	if isDay {
		if isWeekend {
			return rs.WeekendDay
		}
		return rs.WeekdayDay
	}
	if isWeekend {
		return rs.WeekendNight
	}
	return rs.WeekdayNight
}

// CalculatePrice walks the booking duration in 30-minute sub-intervals, each
// priced at the rate in force at its start instant, and rounds the summed
// total to the nearest currency unit. Pricing per interval correctly
// prorates bookings that span the day/night boundary or roll over midnight
// into a weekend or weekday.
//
// A sub-interval that itself straddles a rate boundary is charged entirely
// at its start instant's rate; that granularity is accepted by design.
// Malformed date or time input prices to zero.
func CalculatePrice(date, startTime string, durationHours float64, rates RateSchedule) int {
	day, err := ParseDate(date)
	if err != nil {
		return 0
	}
	startMin, err := TimeToMinutes(startTime)
	if err != nil {
		return 0
	}

	start := day.Add(time.Duration(startMin) * time.Minute)
	total := 0.0
	for elapsed := 0; elapsed < durationMinutes(durationHours); elapsed += 30 {
		at := start.Add(time.Duration(elapsed) * time.Minute)
		total += rates.RateAt(at) / 2
	}
	return int(math.Round(total))
}
