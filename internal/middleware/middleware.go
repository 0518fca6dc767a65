package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"contactform/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an identifier so log lines from one
// submission can be correlated. An inbound X-Request-ID is honored.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("RequestID", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// Logger writes one line per request through the application logger
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger := logging.GetLogger()
		logger.Info("%s %s | %d | %s | %s | %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.ClientIP(),
			c.GetString("RequestID"),
			time.Since(start),
		)
	}
}

// Recovery converts panics into a 500 response instead of killing the server
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := logging.GetLogger()
				logger.Error("panic handling %s %s (request %s): %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString("RequestID"),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
