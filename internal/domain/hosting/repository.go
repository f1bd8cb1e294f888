package hosting

import (
	"context"
	"time"
)

// PlanCount is a per-plan aggregate row for service reports.
type PlanCount struct {
	Plan   string
	Total  int64
	Active int64
}

// StatusCount is a per-status aggregate row for system reports.
type StatusCount struct {
	Status Status
	Total  int64
}

type RecordRepository interface {
	GetByID(ctx context.Context, id uint) (*Record, error)
	// FindExpiringOn returns active records whose expiry date falls on the
	// given day (business-timezone day bounds).
	FindExpiringOn(ctx context.Context, day time.Time) ([]*Record, error)
	// FindExpiringBetween returns active records expiring inside the
	// inclusive [from, to] day window.
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*Record, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByPlan(ctx context.Context) ([]PlanCount, error)
	// CountCreatedBetween counts records first provisioned inside the
	// window, the signups figure of sales reports.
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
