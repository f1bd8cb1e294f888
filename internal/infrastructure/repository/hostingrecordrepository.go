package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/infrastructure/persistence/mappers"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/constants"
	sharedDB "github.com/tansyhq/tansy/internal/shared/db"
)

// hostingSelect is the joined column set every snapshot query shares.
const hostingSelect = `h.id, h.domain_name, h.plan_name, h.status, h.client_id,
	c.name AS client_name, c.company AS client_company,
	c.email AS client_email, c.tech_email AS client_tech_email,
	h.domain_owner_email, h.domain_tech_email,
	h.expires_at, h.created_at`

type HostingRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.HostingRecordMapper
}

func NewHostingRecordRepository(db *gorm.DB) hosting.RecordRepository {
	return &HostingRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewHostingRecordMapper(),
	}
}

func (r *HostingRecordRepositoryImpl) snapshotQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(constants.TableHostingRecords+" h").
		Select(hostingSelect).
		Joins("JOIN "+constants.TableClients+" c ON c.id = h.client_id").
		Scopes(sharedDB.NotDeletedWithAlias("h"), sharedDB.NotDeletedWithAlias("c"))
}

func (r *HostingRecordRepositoryImpl) GetByID(ctx context.Context, id uint) (*hosting.Record, error) {
	var row mappers.HostingSnapshotRow

	err := r.snapshotQuery(ctx).Where("h.id = ?", id).Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hosting record by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to map hosting row to entity: %w", err)
	}

	return entity, nil
}

func (r *HostingRecordRepositoryImpl) FindExpiringOn(ctx context.Context, day time.Time) ([]*hosting.Record, error) {
	return r.findExpiring(ctx, biztime.StartOfDayUTC(day), biztime.EndOfDayUTC(day))
}

func (r *HostingRecordRepositoryImpl) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*hosting.Record, error) {
	return r.findExpiring(ctx, biztime.StartOfDayUTC(from), biztime.EndOfDayUTC(to))
}

func (r *HostingRecordRepositoryImpl) findExpiring(ctx context.Context, from, to time.Time) ([]*hosting.Record, error) {
	var rows []*mappers.HostingSnapshotRow

	err := r.snapshotQuery(ctx).
		Where("h.status = ?", hosting.StatusActive.String()).
		Where("h.expires_at BETWEEN ? AND ?", from, to).
		Order("h.expires_at ASC, h.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expiring hosting records: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map hosting rows to entities: %w", err)
	}

	return entities, nil
}

func (r *HostingRecordRepositoryImpl) CountByStatus(ctx context.Context) ([]hosting.StatusCount, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	err := r.db.WithContext(ctx).
		Table(constants.TableHostingRecords).
		Select("status, COUNT(*) AS total").
		Scopes(sharedDB.NotDeleted()).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count hosting records by status: %w", err)
	}

	counts := make([]hosting.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, hosting.StatusCount{
			Status: hosting.Status(row.Status),
			Total:  row.Total,
		})
	}
	return counts, nil
}

func (r *HostingRecordRepositoryImpl) CountByPlan(ctx context.Context) ([]hosting.PlanCount, error) {
	var rows []struct {
		Plan   string
		Total  int64
		Active int64
	}

	err := r.db.WithContext(ctx).
		Table(constants.TableHostingRecords).
		Select("plan_name AS plan, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS active",
			hosting.StatusActive.String()).
		Scopes(sharedDB.NotDeleted()).
		Group("plan_name").
		Order("total DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count hosting records by plan: %w", err)
	}

	counts := make([]hosting.PlanCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, hosting.PlanCount{
			Plan:   row.Plan,
			Total:  row.Total,
			Active: row.Active,
		})
	}
	return counts, nil
}

func (r *HostingRecordRepositoryImpl) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table(constants.TableHostingRecords).
		Scopes(sharedDB.NotDeleted()).
		Where("created_at BETWEEN ? AND ?", biztime.StartOfDayUTC(from), biztime.EndOfDayUTC(to)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count hosting records created between dates: %w", err)
	}

	return count, nil
}
