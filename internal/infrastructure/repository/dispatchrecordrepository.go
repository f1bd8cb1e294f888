package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/mappers"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/models"
)

// DispatchRecordRepositoryImpl persists the dispatch ledger. Rows are only
// ever appended; retention is an operational concern outside the engine.
type DispatchRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DispatchRecordMapper
}

func NewDispatchRecordRepository(db *gorm.DB) notification.DispatchRecordRepository {
	return &DispatchRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewDispatchRecordMapper(),
	}
}

func (r *DispatchRecordRepositoryImpl) Append(ctx context.Context, record *notification.DispatchRecord) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map dispatch record entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append dispatch record: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set dispatch record ID: %w", err)
	}

	return nil
}

func (r *DispatchRecordRepositoryImpl) Exists(ctx context.Context, kind vo.DispatchKind, referenceID uint, recipient string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.DispatchRecordModel{}).
		Where("kind = ? AND reference_id = ? AND recipient = ?", kind.String(), referenceID, recipient).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check dispatch record existence: %w", err)
	}

	return count > 0, nil
}

func (r *DispatchRecordRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*notification.DispatchRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.DispatchRecordModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dispatch records: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	var modelList []*models.DispatchRecordModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recent dispatch records: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map dispatch record models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *DispatchRecordRepositoryImpl) ListByReference(ctx context.Context, kind vo.DispatchKind, referenceID uint, limit int) ([]*notification.DispatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var modelList []*models.DispatchRecordModel
	err := r.db.WithContext(ctx).
		Where("kind = ? AND reference_id = ?", kind.String(), referenceID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch records by reference: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map dispatch record models to entities: %w", err)
	}

	return entities, nil
}
