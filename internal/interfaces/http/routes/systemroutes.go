package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tansyhq/tansy/internal/interfaces/http/handlers"
)

// SetupSystemRoutes configures liveness and metrics endpoints. These are
// unauthenticated so that probes and scrapers do not need the admin token.
func SetupSystemRoutes(engine *gin.Engine, health *handlers.HealthHandler) {
	engine.GET("/healthz", health.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
