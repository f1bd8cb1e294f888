package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tansyhq/tansy/internal/infrastructure/config"
	"github.com/tansyhq/tansy/internal/interfaces/http/handlers"
	"github.com/tansyhq/tansy/internal/interfaces/http/middleware"
	"github.com/tansyhq/tansy/internal/interfaces/http/routes"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Health       *handlers.HealthHandler
	Notification *handlers.NotificationHandler
	Setting      *handlers.SettingHandler
}

// Router owns the gin engine and the HTTP server lifecycle.
type Router struct {
	engine *gin.Engine
	server *http.Server
	logger logger.Interface
}

// NewRouter builds the engine with middleware and all route groups.
func NewRouter(cfg *config.Config, h Handlers, log logger.Interface) *Router {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	routes.SetupSystemRoutes(engine, h.Health)

	adminToken := middleware.AdminToken(cfg.Server.AdminToken, log)
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		Handler:    h.Notification,
		AdminToken: adminToken,
	})
	routes.SetupSettingRoutes(engine, &routes.SettingRouteConfig{
		Handler:    h.Setting,
		AdminToken: adminToken,
	})

	return &Router{
		engine: engine,
		logger: log,
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (r *Router) Start(addr string) error {
	r.server = &http.Server{
		Addr:              addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	r.logger.Infow("HTTP server starting", "addr", addr)

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
