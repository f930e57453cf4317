package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	courtRepo "turfbook/database/repository/court"
	"turfbook/models"
)

// ListCourtsHandler returns the courts available for booking. Pass
// ?all=true to include inactive courts.
func ListCourtsHandler(repo courtRepo.CourtRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		activeOnly := c.Query("all") != "true"
		courts, err := repo.GetAll(activeOnly)
		if err != nil {
			logger.Error("Failed to list courts", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch courts"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"courts": courts})
	}
}

// GetCourtByIDHandler returns a single court.
func GetCourtByIDHandler(repo courtRepo.CourtRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
			return
		}

		court, err := repo.GetByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}

		c.JSON(http.StatusOK, court)
	}
}

// CreateCourtHandler registers a new court. Admin only.
func CreateCourtHandler(repo courtRepo.CourtRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var court models.Court
		if err := c.ShouldBindJSON(&court); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := repo.Create(&court); err != nil {
			logger.Error("Failed to create court", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create court"})
			return
		}

		c.JSON(http.StatusCreated, court)
	}
}
