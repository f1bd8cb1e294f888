package usecases

import (
	"context"
	"fmt"

	"github.com/tansyhq/tansy/internal/application/notification/dto"
	"github.com/tansyhq/tansy/internal/domain/notification"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

const defaultDispatchListLimit = 50

// ListDispatchesUseCase serves the ops API's view of the dispatch ledger.
type ListDispatchesUseCase struct {
	ledger notification.DispatchRecordRepository
	logger logger.Interface
}

func NewListDispatchesUseCase(
	ledger notification.DispatchRecordRepository,
	logger logger.Interface,
) *ListDispatchesUseCase {
	return &ListDispatchesUseCase{
		ledger: ledger,
		logger: logger,
	}
}

func (uc *ListDispatchesUseCase) Execute(ctx context.Context, limit int) (*dto.ListDispatchesResponse, error) {
	if limit <= 0 {
		limit = defaultDispatchListLimit
	}

	records, total, err := uc.ledger.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list dispatch records", "error", err)
		return nil, fmt.Errorf("failed to list dispatch records: %w", err)
	}

	response := &dto.ListDispatchesResponse{
		Total:   total,
		Records: make([]dto.DispatchRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		response.Records = append(response.Records, dto.DispatchRecordResponse{
			ID:          r.ID(),
			Kind:        r.Kind().String(),
			ReferenceID: r.ReferenceID(),
			Recipient:   r.Recipient(),
			Subject:     r.Subject(),
			Status:      r.Status().String(),
			Detail:      r.Detail(),
			CreatedAt:   r.CreatedAt(),
		})
	}

	return response, nil
}
