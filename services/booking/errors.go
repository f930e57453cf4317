package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound indicates an expired or unknown cart session.
var ErrSessionNotFound = errors.New("cart session not found or expired")

// ValidationError reports a rejected cart item field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError indicates the requested slot overlaps an existing booking or
// the facility's non-operating hours.
type ConflictError struct {
	Date      string
	StartTime string
	CourtID   int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s on court %d is no longer available", e.Date, e.StartTime, e.CourtID)
}
