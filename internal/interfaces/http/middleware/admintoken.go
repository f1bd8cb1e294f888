package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tansyhq/tansy/internal/shared/constants"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/utils"
)

// AdminToken guards the admin API with a static token carried in the
// X-Admin-Token header. An empty configured token disables the API
// entirely rather than leaving it open.
func AdminToken(token string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			log.Warnw("admin API request rejected: no admin token configured",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "admin API is not configured")
			c.Abort()
			return
		}

		provided := c.GetHeader(constants.HeaderXAdminToken)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			log.Warnw("admin API request rejected: invalid token",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid admin token")
			c.Abort()
			return
		}

		c.Next()
	}
}
