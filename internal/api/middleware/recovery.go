package middleware

import (
	"net/http"
	"runtime/debug"

	"space-missions-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with a generic error body
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
					"panic": r,
					"stack": string(debug.Stack()),
				}).Error("Recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()

		c.Next()
	}
}
