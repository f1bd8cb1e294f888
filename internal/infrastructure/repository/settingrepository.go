package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/mappers"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
	sharedDB "github.com/tansyhq/tansy/internal/shared/db"
)

type SettingRepositoryImpl struct {
	tm     *sharedDB.TransactionManager
	mapper mappers.SettingMapper
}

func NewSettingRepository(db *gorm.DB) setting.Repository {
	return &SettingRepositoryImpl{
		tm:     sharedDB.NewTransactionManager(db),
		mapper: mappers.NewSettingMapper(),
	}
}

func (r *SettingRepositoryImpl) GetByKey(ctx context.Context, category, key string) (*setting.Setting, error) {
	var model models.SettingModel

	err := r.tm.GetTx(ctx).
		Where("category = ? AND setting_key = ?", category, key).
		Take(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, setting.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SettingRepositoryImpl) GetByCategory(ctx context.Context, category string) ([]*setting.Setting, error) {
	var modelList []*models.SettingModel

	err := r.tm.GetTx(ctx).
		Where("category = ?", category).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get settings by category: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SettingRepositoryImpl) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	var modelList []*models.SettingModel

	err := r.tm.GetTx(ctx).
		Order("category ASC, setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SettingRepositoryImpl) Upsert(ctx context.Context, s *setting.Setting) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to map setting entity to model: %w", err)
	}

	err = r.tm.GetTx(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}, {Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "value_type", "description", "version", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SettingRepositoryImpl) UpsertMany(ctx context.Context, settings []*setting.Setting) error {
	if len(settings) == 0 {
		return nil
	}

	return r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, s := range settings {
			if err := r.Upsert(txCtx, s); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SettingRepositoryImpl) Delete(ctx context.Context, category, key string) error {
	result := r.tm.GetTx(ctx).
		Where("category = ? AND setting_key = ?", category, key).
		Delete(&models.SettingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}
