package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/utils"
)

// HealthHandler reports the latest Mongo and Redis health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
