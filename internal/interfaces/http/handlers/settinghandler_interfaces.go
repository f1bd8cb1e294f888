package handlers

import (
	"context"

	"github.com/tansyhq/tansy/internal/application/setting/dto"
)

type getSettingsUseCase interface {
	GetByCategory(ctx context.Context, category string) (*dto.CategorySettingsResponse, error)
}

type updateSettingsUseCase interface {
	UpdateCategorySettings(ctx context.Context, category string, request dto.UpdateCategorySettingsRequest) error
}
