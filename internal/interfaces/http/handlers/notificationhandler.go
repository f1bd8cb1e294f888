package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tansyhq/tansy/internal/application/notification/dto"
	"github.com/tansyhq/tansy/internal/application/notification/usecases"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/utils"
)

// NotificationHandler exposes the operator surface for notification rules:
// manual triggers and the dispatch ledger.
type NotificationHandler struct {
	triggerRuleUC    triggerRuleUseCase
	listDispatchesUC listDispatchesUseCase
	logger           logger.Interface
}

func NewNotificationHandler(
	triggerRuleUC triggerRuleUseCase,
	listDispatchesUC listDispatchesUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		triggerRuleUC:    triggerRuleUC,
		listDispatchesUC: listDispatchesUC,
		logger:           logger,
	}
}

// TriggerRule handles POST /api/notifications/rules/:id/trigger. The body is
// optional; an item_id narrows the trigger to a single record.
func (h *NotificationHandler) TriggerRule(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid rule id")
		return
	}

	var req dto.TriggerRuleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid trigger request body", "rule_id", ruleID, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	cmd := usecases.TriggerRuleCommand{
		RuleID: uint(ruleID),
		ItemID: req.ItemID,
	}

	result, err := h.triggerRuleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrRuleNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "notification rule not found")
		case errors.Is(err, usecases.ErrItemNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "record not found")
		case errors.Is(err, usecases.ErrNotExpiryRule):
			utils.ErrorResponse(c, http.StatusBadRequest, "only expiry rules can be triggered manually")
		default:
			h.logger.Errorw("manual trigger failed", "rule_id", ruleID, "error", err)
			utils.ErrorResponseWithError(c, err)
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rule triggered", result)
}

// ListDispatches handles GET /api/notifications/dispatches?limit=.
func (h *NotificationHandler) ListDispatches(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	result, err := h.listDispatchesUC.Execute(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorw("failed to list dispatch records", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Records, result.Total)
}
