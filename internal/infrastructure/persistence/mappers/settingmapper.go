package mappers

import (
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/mapper"
)

type SettingMapper interface {
	ToEntity(model *models.SettingModel) (*setting.Setting, error)
	ToModel(entity *setting.Setting) (*models.SettingModel, error)
	ToEntities(models []*models.SettingModel) ([]*setting.Setting, error)
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToEntity(model *models.SettingModel) (*setting.Setting, error) {
	if model == nil {
		return nil, nil
	}

	return setting.ReconstructSetting(
		model.ID,
		model.Category,
		model.SettingKey,
		model.Value,
		setting.ValueType(model.ValueType),
		model.Description,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *SettingMapperImpl) ToModel(entity *setting.Setting) (*models.SettingModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SettingModel{
		ID:          entity.ID(),
		Category:    entity.Category(),
		SettingKey:  entity.Key(),
		Value:       entity.Value(),
		ValueType:   string(entity.ValueType()),
		Description: entity.Description(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *SettingMapperImpl) ToEntities(modelList []*models.SettingModel) ([]*setting.Setting, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(mo *models.SettingModel) uint {
		return mo.ID
	})
}
