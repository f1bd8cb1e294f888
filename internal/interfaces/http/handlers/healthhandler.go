package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/utils"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports process liveness and database reachability.
type HealthHandler struct {
	db        *gorm.DB
	startedAt time.Time
	logger    logger.Interface
}

func NewHealthHandler(db *gorm.DB, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startedAt: time.Now(),
		logger:    logger,
	}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	status := healthStatus{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
	}

	if err := h.pingDatabase(c.Request.Context()); err != nil {
		h.logger.Errorw("health check database ping failed", "error", err)
		status.Status = "degraded"
		status.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{Success: false, Data: status})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return nil
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	return sqlDB.PingContext(pingCtx)
}
