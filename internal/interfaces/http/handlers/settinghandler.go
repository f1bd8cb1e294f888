package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tansyhq/tansy/internal/application/setting/dto"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/utils"
)

// SettingHandler handles panel settings admin API operations
type SettingHandler struct {
	getSettingsUC    getSettingsUseCase
	updateSettingsUC updateSettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getSettingsUC getSettingsUseCase,
	updateSettingsUC updateSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

// GetCategorySettings retrieves all settings in a category
// GET /api/settings/:category
func (h *SettingHandler) GetCategorySettings(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "category parameter is required")
		return
	}

	result, err := h.getSettingsUC.GetByCategory(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "category not found or has no settings")
			return
		}
		h.logger.Errorw("failed to get category settings", "category", category, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateCategorySettings batch updates settings in a category
// PUT /api/settings/:category
func (h *SettingHandler) UpdateCategorySettings(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "category parameter is required")
		return
	}

	var req dto.UpdateCategorySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category settings", "category", category, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateSettingsUC.UpdateCategorySettings(c.Request.Context(), category, req); err != nil {
		switch {
		case errors.Is(err, setting.ErrSettingNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "setting not found")
		case errors.Is(err, setting.ErrInvalidSettingKey):
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid setting key")
		case errors.Is(err, setting.ErrInvalidValueType):
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid value type")
		default:
			h.logger.Errorw("failed to update category settings", "category", category, "error", err)
			utils.ErrorResponseWithError(c, err)
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", nil)
}
