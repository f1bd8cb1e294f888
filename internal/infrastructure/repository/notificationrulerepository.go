package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/mappers"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	"github.com/tansyhq/tansy/internal/shared/errors"
)

type NotificationRuleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationRuleMapper
}

func NewNotificationRuleRepository(db *gorm.DB) notification.RuleRepository {
	return &NotificationRuleRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationRuleMapper(),
	}
}

func (r *NotificationRuleRepositoryImpl) Create(ctx context.Context, rule *notification.Rule) error {
	model, err := r.mapper.ToModel(rule)
	if err != nil {
		return fmt.Errorf("failed to map rule entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification rule: %w", err)
	}

	if err := rule.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set rule ID: %w", err)
	}

	return nil
}

func (r *NotificationRuleRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Rule, error) {
	var model models.NotificationRuleModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification rule by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map rule model to entity: %w", err)
	}

	return entity, nil
}

func (r *NotificationRuleRepositoryImpl) Update(ctx context.Context, rule *notification.Rule) error {
	model, err := r.mapper.ToModel(rule)
	if err != nil {
		return fmt.Errorf("failed to map rule entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification rule: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification rule not found")
	}

	return nil
}

func (r *NotificationRuleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.NotificationRuleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification rule: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification rule not found")
	}

	return nil
}

func (r *NotificationRuleRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*notification.Rule, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.NotificationRuleModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notification rules: %w", err)
	}

	var modelList []*models.NotificationRuleModel
	query = query.Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notification rules: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map rule models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *NotificationRuleRepositoryImpl) ListEnabledByClass(ctx context.Context, class vo.RuleClass) ([]*notification.Rule, error) {
	var modelList []*models.NotificationRuleModel

	err := r.db.WithContext(ctx).
		Where("class = ? AND enabled = ?", class.String(), true).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled rules by class: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map rule models to entities: %w", err)
	}

	return entities, nil
}

func (r *NotificationRuleRepositoryImpl) UpdateLastDispatch(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.NotificationRuleModel{}).
		Where("id = ?", id).
		Update("last_dispatch_at", at.UTC())
	if result.Error != nil {
		return fmt.Errorf("failed to update last dispatch: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification rule not found")
	}

	return nil
}
