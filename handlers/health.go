package handlers

import (
	"net/http"
	"time"

	"github.com/bol3ezzz/spalux-backend/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness plus the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "OK",
		"message":      "SpaLux API is running",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"dependencies": utils.GetHealthStatus(),
	})
}
