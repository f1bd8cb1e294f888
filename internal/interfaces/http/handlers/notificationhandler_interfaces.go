package handlers

import (
	"context"

	"github.com/tansyhq/tansy/internal/application/notification/dto"
	"github.com/tansyhq/tansy/internal/application/notification/usecases"
)

type triggerRuleUseCase interface {
	Execute(ctx context.Context, cmd usecases.TriggerRuleCommand) (*dto.TriggerResult, error)
}

type listDispatchesUseCase interface {
	Execute(ctx context.Context, limit int) (*dto.ListDispatchesResponse, error)
}
