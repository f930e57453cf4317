package booking

import (
	"math"
	"regexp"
	"strings"

	"turfbook/services/schedule"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

const (
	minDurationHours = 0.5
	maxDurationHours = 4
	minPeopleCount   = 2
)

// ValidateCartItem enforces the booking form rules before a candidate slot
// enters the cart. Availability and pricing run separately; this only vets
// the shape of the input.
func ValidateCartItem(in CartItemInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return &ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if strings.TrimSpace(in.Sport) == "" {
		return &ValidationError{Field: "sport", Message: "sport is required"}
	}
	if in.PeopleCount < minPeopleCount {
		return &ValidationError{Field: "peopleCount", Message: "at least 2 people required"}
	}
	if !dateRe.MatchString(in.Date) {
		return &ValidationError{Field: "date", Message: "invalid date format (YYYY-MM-DD)"}
	}
	if _, err := schedule.ParseDate(in.Date); err != nil {
		return &ValidationError{Field: "date", Message: "invalid calendar date"}
	}
	if !timeRe.MatchString(in.StartTime) {
		return &ValidationError{Field: "startTime", Message: "invalid start time (HH:MM)"}
	}
	if _, err := schedule.TimeToMinutes(in.StartTime); err != nil {
		return &ValidationError{Field: "startTime", Message: "start time out of range"}
	}
	if err := validateDuration(in.DurationHours); err != nil {
		return err
	}
	if in.CourtID <= 0 {
		return &ValidationError{Field: "courtId", Message: "court id must be positive"}
	}
	return nil
}

// validateDuration requires a duration in [0.5, 4] hours on a half-hour step.
func validateDuration(durationHours float64) error {
	if durationHours < minDurationHours {
		return &ValidationError{Field: "durationHours", Message: "minimum duration is 0.5 hours"}
	}
	if durationHours > maxDurationHours {
		return &ValidationError{Field: "durationHours", Message: "maximum duration is 4 hours"}
	}
	steps := durationHours * 2
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return &ValidationError{Field: "durationHours", Message: "duration must be a multiple of 0.5 hours"}
	}
	return nil
}
