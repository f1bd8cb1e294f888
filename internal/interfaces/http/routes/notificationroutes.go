package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tansyhq/tansy/internal/interfaces/http/handlers"
)

// NotificationRouteConfig holds the configuration for notification routes
type NotificationRouteConfig struct {
	Handler    *handlers.NotificationHandler
	AdminToken gin.HandlerFunc
}

// SetupNotificationRoutes configures the notification admin routes
func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/api/notifications")
	notifications.Use(config.AdminToken)
	{
		notifications.POST("/rules/:id/trigger", config.Handler.TriggerRule)
		notifications.GET("/dispatches", config.Handler.ListDispatches)
	}
}
