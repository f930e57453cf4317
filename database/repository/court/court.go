package courtRepo

import (
	"turfbook/models"
)

// CourtRepository defines methods for court data access.
type CourtRepository interface {
	// GetAll retrieves courts, optionally restricted to active ones.
	GetAll(activeOnly bool) ([]models.Court, error)
	// GetByID retrieves a court by its numeric ID.
	GetByID(id int) (*models.Court, error)
	// Create inserts a new court record.
	Create(court *models.Court) error
}
