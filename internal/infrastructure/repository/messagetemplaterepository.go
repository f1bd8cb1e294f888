package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/domain/notification"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/mappers"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/errors"
)

type MessageTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MessageTemplateMapper
}

func NewMessageTemplateRepository(db *gorm.DB) notification.TemplateRepository {
	return &MessageTemplateRepositoryImpl{
		db:     db,
		mapper: mappers.NewMessageTemplateMapper(),
	}
}

func (r *MessageTemplateRepositoryImpl) Create(ctx context.Context, template *notification.MessageTemplate) error {
	model, err := r.mapper.ToModel(template)
	if err != nil {
		return fmt.Errorf("failed to map template entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message template: %w", err)
	}

	if err := template.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set template ID: %w", err)
	}

	return nil
}

func (r *MessageTemplateRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.MessageTemplate, error) {
	var model models.MessageTemplateModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get message template by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map template model to entity: %w", err)
	}

	return entity, nil
}

func (r *MessageTemplateRepositoryImpl) Update(ctx context.Context, template *notification.MessageTemplate) error {
	model, err := r.mapper.ToModel(template)
	if err != nil {
		return fmt.Errorf("failed to map template entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update message template: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("message template not found")
	}

	return nil
}

func (r *MessageTemplateRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MessageTemplateModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete message template: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("message template not found")
	}

	return nil
}

func (r *MessageTemplateRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*notification.MessageTemplate, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.MessageTemplateModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count message templates: %w", err)
	}

	var modelList []*models.MessageTemplateModel
	query = query.Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list message templates: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map template models to entities: %w", err)
	}

	return entities, total, nil
}
