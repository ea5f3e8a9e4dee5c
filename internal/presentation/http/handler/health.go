package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	}
}
