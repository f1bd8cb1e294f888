package notification

import (
	"context"
	"time"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

type RuleRepository interface {
	Create(ctx context.Context, rule *Rule) error
	GetByID(ctx context.Context, id uint) (*Rule, error)
	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*Rule, int64, error)
	// ListEnabledByClass returns every enabled rule of one class, the unit a
	// dispatch pass iterates over.
	ListEnabledByClass(ctx context.Context, class vo.RuleClass) ([]*Rule, error)
	// UpdateLastDispatch persists a successful recurring dispatch without
	// rewriting the whole aggregate.
	UpdateLastDispatch(ctx context.Context, id uint, at time.Time) error
}

type TemplateRepository interface {
	Create(ctx context.Context, template *MessageTemplate) error
	GetByID(ctx context.Context, id uint) (*MessageTemplate, error)
	Update(ctx context.Context, template *MessageTemplate) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*MessageTemplate, int64, error)
}

type DispatchRecordRepository interface {
	// Append writes one ledger row. Rows are never updated or deleted.
	Append(ctx context.Context, record *DispatchRecord) error
	// Exists reports whether any row (sent or failed) exists for the tuple.
	// The automatic expiry path treats true as "already handled".
	Exists(ctx context.Context, kind vo.DispatchKind, referenceID uint, recipient string) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]*DispatchRecord, int64, error)
	ListByReference(ctx context.Context, kind vo.DispatchKind, referenceID uint, limit int) ([]*DispatchRecord, error)
}
