package usecases

import (
	"context"

	"github.com/tansyhq/tansy/internal/application/setting/dto"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// GetSettingsUseCase handles retrieval of panel settings
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase
func NewGetSettingsUseCase(
	settingRepo setting.Repository,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// GetByCategory retrieves all settings in a category
func (uc *GetSettingsUseCase) GetByCategory(ctx context.Context, category string) (*dto.CategorySettingsResponse, error) {
	settings, err := uc.settingRepo.GetByCategory(ctx, category)
	if err != nil {
		uc.logger.Errorw("failed to get settings by category",
			"category", category,
			"error", err,
		)
		return nil, err
	}

	response := &dto.CategorySettingsResponse{
		Category: category,
		Settings: make([]dto.SettingResponse, 0, len(settings)),
	}

	for _, s := range settings {
		isSensitive := dto.IsSensitiveKey(s.Key())
		value := uc.parseValue(s)

		if isSensitive {
			if strVal, ok := value.(string); ok {
				value = dto.MaskSensitiveValue(strVal)
			}
		}

		response.Settings = append(response.Settings, dto.SettingResponse{
			ID:          s.ID(),
			Category:    s.Category(),
			Key:         s.Key(),
			Value:       value,
			ValueType:   string(s.ValueType()),
			Description: s.Description(),
			IsSensitive: isSensitive,
			UpdatedAt:   s.UpdatedAt(),
		})
	}

	return response, nil
}

// GetSettingByKey retrieves a setting by category and key
func (uc *GetSettingsUseCase) GetSettingByKey(ctx context.Context, category, key string) (*setting.Setting, error) {
	return uc.settingRepo.GetByKey(ctx, category, key)
}

// parseValue parses the setting value based on its type
func (uc *GetSettingsUseCase) parseValue(s *setting.Setting) any {
	switch s.ValueType() {
	case setting.ValueTypeInt:
		if val, err := s.GetIntValue(); err == nil {
			return val
		}
	case setting.ValueTypeBool:
		if val, err := s.GetBoolValue(); err == nil {
			return val
		}
	case setting.ValueTypeJSON:
		var val any
		if err := s.GetJSONValue(&val); err == nil {
			return val
		}
	}
	return s.GetStringValue()
}
