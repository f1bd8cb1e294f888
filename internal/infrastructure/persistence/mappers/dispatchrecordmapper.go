package mappers

import (
	"fmt"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/mapper"
)

type DispatchRecordMapper interface {
	ToEntity(model *models.DispatchRecordModel) (*notification.DispatchRecord, error)
	ToModel(entity *notification.DispatchRecord) (*models.DispatchRecordModel, error)
	ToEntities(models []*models.DispatchRecordModel) ([]*notification.DispatchRecord, error)
}

type DispatchRecordMapperImpl struct{}

func NewDispatchRecordMapper() DispatchRecordMapper {
	return &DispatchRecordMapperImpl{}
}

func (m *DispatchRecordMapperImpl) ToEntity(model *models.DispatchRecordModel) (*notification.DispatchRecord, error) {
	if model == nil {
		return nil, nil
	}

	kind, err := vo.NewDispatchKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch kind: %w", err)
	}
	status, err := vo.NewDispatchStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch status: %w", err)
	}

	entity, err := notification.ReconstructDispatchRecord(
		model.ID,
		kind,
		model.ReferenceID,
		model.Recipient,
		model.Subject,
		status,
		model.Detail,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct dispatch record entity: %w", err)
	}

	return entity, nil
}

func (m *DispatchRecordMapperImpl) ToModel(entity *notification.DispatchRecord) (*models.DispatchRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DispatchRecordModel{
		ID:          entity.ID(),
		Kind:        entity.Kind().String(),
		ReferenceID: entity.ReferenceID(),
		Recipient:   entity.Recipient(),
		Subject:     entity.Subject(),
		Status:      entity.Status().String(),
		Detail:      entity.Detail(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *DispatchRecordMapperImpl) ToEntities(modelList []*models.DispatchRecordModel) ([]*notification.DispatchRecord, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(mo *models.DispatchRecordModel) uint {
		return mo.ID
	})
}
