package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/mapper"
)

// recipientSpecJSON is the storage shape of one recipient spec entry.
type recipientSpecJSON struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type MessageTemplateMapper interface {
	ToEntity(model *models.MessageTemplateModel) (*notification.MessageTemplate, error)
	ToModel(entity *notification.MessageTemplate) (*models.MessageTemplateModel, error)
	ToEntities(models []*models.MessageTemplateModel) ([]*notification.MessageTemplate, error)
}

type MessageTemplateMapperImpl struct{}

func NewMessageTemplateMapper() MessageTemplateMapper {
	return &MessageTemplateMapperImpl{}
}

func (m *MessageTemplateMapperImpl) ToEntity(model *models.MessageTemplateModel) (*notification.MessageTemplate, error) {
	if model == nil {
		return nil, nil
	}

	toSpecs, err := unmarshalSpecs(model.ToSpecs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal to_specs: %w", err)
	}
	ccSpecs, err := unmarshalSpecs(model.CcSpecs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cc_specs: %w", err)
	}

	entity, err := notification.ReconstructMessageTemplate(
		model.ID,
		model.Name,
		model.Subject,
		model.Body,
		toSpecs,
		ccSpecs,
		model.Enabled,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message template entity: %w", err)
	}

	return entity, nil
}

func (m *MessageTemplateMapperImpl) ToModel(entity *notification.MessageTemplate) (*models.MessageTemplateModel, error) {
	if entity == nil {
		return nil, nil
	}

	toSpecs, err := marshalSpecs(entity.ToSpecs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to_specs: %w", err)
	}
	ccSpecs, err := marshalSpecs(entity.CcSpecs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cc_specs: %w", err)
	}

	return &models.MessageTemplateModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Subject:   entity.Subject(),
		Body:      entity.Body(),
		ToSpecs:   toSpecs,
		CcSpecs:   ccSpecs,
		Enabled:   entity.IsEnabled(),
		Version:   entity.Version(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *MessageTemplateMapperImpl) ToEntities(modelList []*models.MessageTemplateModel) ([]*notification.MessageTemplate, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(mo *models.MessageTemplateModel) uint {
		return mo.ID
	})
}

func unmarshalSpecs(data datatypes.JSON) ([]vo.RecipientSpec, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var raw []recipientSpecJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	specs := make([]vo.RecipientSpec, 0, len(raw))
	for _, r := range raw {
		spec, err := vo.NewRecipientSpec(vo.RecipientKind(r.Kind), r.Value)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func marshalSpecs(specs []vo.RecipientSpec) (datatypes.JSON, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	raw := make([]recipientSpecJSON, 0, len(specs))
	for _, s := range specs {
		raw = append(raw, recipientSpecJSON{Kind: s.Kind().String(), Value: s.Value()})
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
