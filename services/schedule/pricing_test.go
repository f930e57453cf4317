package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 2024-06-10 is a Monday, 2024-06-08 a Saturday, 2024-06-07 a Friday.

func testRates() RateSchedule {
	return RateSchedule{
		WeekdayDay:   600,
		WeekdayNight: 900,
		WeekendDay:   800,
		WeekendNight: 1100,
		DayStartMin:  6 * 60,
		DayEndMin:    18 * 60,
	}
}

func TestCalculatePrice_SingleWindow(t *testing.T) {
	rates := testRates()

	// Two day-rate hours on a weekday.
	assert.Equal(t, 1200, CalculatePrice("2024-06-10", "10:00", 2, rates))
	// Half an hour is half the hourly rate.
	assert.Equal(t, 300, CalculatePrice("2024-06-10", "10:00", 0.5, rates))
}

func TestCalculatePrice_DayNightBoundary(t *testing.T) {
	rates := testRates()

	// 17:30-18:00 at the day rate, 18:00-18:30 at the night rate. The
	// asymmetric rates distinguish per-interval summation from averaging.
	assert.Equal(t, 300+450, CalculatePrice("2024-06-10", "17:30", 1, rates))
}

func TestCalculatePrice_WeekendSelection(t *testing.T) {
	rates := testRates()

	// Saturday morning uses the weekend day rate.
	assert.Equal(t, 800, CalculatePrice("2024-06-08", "10:00", 1, rates))
	// Saturday evening uses the weekend night rate.
	assert.Equal(t, 1100, CalculatePrice("2024-06-08", "20:00", 1, rates))
}

func TestCalculatePrice_MidnightIntoWeekend(t *testing.T) {
	rates := testRates()

	// Friday 23:30-00:30: one half hour of weekday night, one of weekend
	// night on the Saturday side of midnight.
	assert.Equal(t, 450+550, CalculatePrice("2024-06-07", "23:30", 1, rates))
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	rates := testRates()

	first := CalculatePrice("2024-06-10", "17:30", 3.5, rates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculatePrice("2024-06-10", "17:30", 3.5, rates))
	}
}

func TestCalculatePrice_RoundsOnce(t *testing.T) {
	rates := testRates()
	rates.WeekdayDay = 605 // 302.5 per half hour

	// Three half-hours sum to 907.5 and round to 908; rounding each
	// interval first would give 909.
	assert.Equal(t, 908, CalculatePrice("2024-06-10", "10:00", 1.5, rates))
}

func TestCalculatePrice_InvalidOrEmptyInput(t *testing.T) {
	rates := testRates()

	assert.Equal(t, 0, CalculatePrice("bogus", "10:00", 1, rates))
	assert.Equal(t, 0, CalculatePrice("2024-06-10", "bogus", 1, rates))
	assert.Equal(t, 0, CalculatePrice("2024-06-10", "10:00", 0, rates))
}
