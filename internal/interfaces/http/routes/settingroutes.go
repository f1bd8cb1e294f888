package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tansyhq/tansy/internal/interfaces/http/handlers"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler    *handlers.SettingHandler
	AdminToken gin.HandlerFunc
}

// SetupSettingRoutes configures panel setting admin routes
func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/api/settings")
	settings.Use(config.AdminToken)
	{
		settings.GET("/:category", config.Handler.GetCategorySettings)
		settings.PUT("/:category", config.Handler.UpdateCategorySettings)
	}
}
