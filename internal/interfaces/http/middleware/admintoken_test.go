package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tansyhq/tansy/internal/shared/constants"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

func newAdminTokenEngine(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(AdminToken(token, logger.NewLogger()))
	engine.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestAdminToken_ValidTokenPasses(t *testing.T) {
	engine := newAdminTokenEngine("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(constants.HeaderXAdminToken, "s3cret")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminToken_WrongTokenRejected(t *testing.T) {
	engine := newAdminTokenEngine("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(constants.HeaderXAdminToken, "wrong")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminToken_MissingTokenRejected(t *testing.T) {
	engine := newAdminTokenEngine("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminToken_UnconfiguredTokenDisablesAPI(t *testing.T) {
	engine := newAdminTokenEngine("")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(constants.HeaderXAdminToken, "anything")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
