package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/mapper"
)

type NotificationRuleMapper interface {
	ToEntity(model *models.NotificationRuleModel) (*notification.Rule, error)
	ToModel(entity *notification.Rule) (*models.NotificationRuleModel, error)
	ToEntities(models []*models.NotificationRuleModel) ([]*notification.Rule, error)
}

type NotificationRuleMapperImpl struct{}

func NewNotificationRuleMapper() NotificationRuleMapper {
	return &NotificationRuleMapperImpl{}
}

func (m *NotificationRuleMapperImpl) ToEntity(model *models.NotificationRuleModel) (*notification.Rule, error) {
	if model == nil {
		return nil, nil
	}

	class, err := vo.NewRuleClass(model.Class)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule class: %w", err)
	}

	var schedule vo.OffsetSchedule
	var scope vo.EntityScope
	var cadence vo.Cadence
	var category vo.RuleCategory

	switch {
	case class.IsExpiry():
		var offsets []int
		if len(model.Offsets) > 0 {
			if err := json.Unmarshal(model.Offsets, &offsets); err != nil {
				return nil, fmt.Errorf("failed to unmarshal offsets: %w", err)
			}
		}
		schedule, err = vo.NewOffsetSchedule(offsets)
		if err != nil {
			return nil, fmt.Errorf("failed to create offset schedule: %w", err)
		}
		scope, err = vo.NewEntityScope(model.EntityScope)
		if err != nil {
			return nil, fmt.Errorf("failed to create entity scope: %w", err)
		}
	case class.IsRecurring():
		frequency, err := vo.NewFrequency(model.Frequency)
		if err != nil {
			return nil, fmt.Errorf("failed to create frequency: %w", err)
		}
		cadence, err = vo.NewCadence(frequency, model.AtHour, model.AtMinute, time.Weekday(model.Weekday), model.MonthDay)
		if err != nil {
			return nil, fmt.Errorf("failed to create cadence: %w", err)
		}
		category, err = vo.NewRuleCategory(model.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to create rule category: %w", err)
		}
	}

	fallback, err := vo.NewFallbackRecipient(vo.FallbackMode(model.FallbackMode), model.FallbackAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback recipient: %w", err)
	}

	entity, err := notification.ReconstructRule(
		model.ID,
		model.Name,
		class,
		scope,
		schedule,
		cadence,
		category,
		model.TemplateID,
		fallback,
		model.AttachReport,
		model.Enabled,
		model.LastDispatchAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct rule entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationRuleMapperImpl) ToModel(entity *notification.Rule) (*models.NotificationRuleModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.NotificationRuleModel{
		ID:             entity.ID(),
		Name:           entity.Name(),
		Class:          entity.Class().String(),
		TemplateID:     entity.TemplateID(),
		FallbackMode:   entity.Fallback().Mode().String(),
		FallbackAddr:   entity.Fallback().Address(),
		AttachReport:   entity.AttachReport(),
		Enabled:        entity.IsEnabled(),
		LastDispatchAt: entity.LastDispatchAt(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}

	switch {
	case entity.Class().IsExpiry():
		model.EntityScope = entity.EntityScope().String()
		data, err := json.Marshal(entity.Schedule().Values())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal offsets: %w", err)
		}
		model.Offsets = datatypes.JSON(data)
	case entity.Class().IsRecurring():
		cadence := entity.Cadence()
		model.Frequency = cadence.Frequency().String()
		model.AtHour = cadence.AtHour()
		model.AtMinute = cadence.AtMinute()
		model.Weekday = int(cadence.Weekday())
		model.MonthDay = cadence.MonthDay()
		model.Category = entity.Category().String()
	}

	return model, nil
}

func (m *NotificationRuleMapperImpl) ToEntities(modelList []*models.NotificationRuleModel) ([]*notification.Rule, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(mo *models.NotificationRuleModel) uint {
		return mo.ID
	})
}
