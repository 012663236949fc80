package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helpdesk/internal/shared/constants"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming request ID when the client sends one so
// upstream proxies can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}
