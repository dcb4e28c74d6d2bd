package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/missionmarket/intel-api/internal/errors"
)

// respondError maps typed service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
