package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tansyhq/tansy/internal/shared/constants"
)

// RequestID propagates the caller's X-Request-ID or mints a new one, so
// every admin API call can be correlated across logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		// Set it on the inbound request too so the logging formatter sees it.
		c.Request.Header.Set(constants.HeaderXRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
