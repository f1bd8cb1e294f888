package usecases

import (
	"context"
	"time"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/infrastructure/files"
)

// Mailer delivers rendered messages.
type Mailer interface {
	Send(ctx context.Context, msg email.OutboundEmail) error
}

// ReportRenderer turns Markdown report content into HTML.
type ReportRenderer interface {
	RenderFragment(content string) (string, error)
	RenderDocument(title, content string) ([]byte, error)
}

// AttachmentResolver locates per-entity documents for expiry mail.
type AttachmentResolver interface {
	Resolve(entityID uint) ([]files.ResolvedFile, error)
}

// ExpirySource supplies the dated records an expiry rule scope watches.
type ExpirySource interface {
	GetByID(ctx context.Context, id uint) (*hosting.Record, error)
	FindExpiringOn(ctx context.Context, day time.Time) ([]*hosting.Record, error)
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*hosting.Record, error)
}

// SourceRegistry maps entity scopes to their record sources. Hosting is the
// only registered scope today.
type SourceRegistry map[vo.EntityScope]ExpirySource

// Source returns the source for a scope, or nil when the scope has none.
func (r SourceRegistry) Source(scope vo.EntityScope) ExpirySource {
	return r[scope]
}
