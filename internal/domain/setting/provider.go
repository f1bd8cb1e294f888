package setting

import (
	"context"

	sharedConfig "github.com/tansyhq/tansy/internal/shared/config"
)

// ConfigValue represents a configuration value with its source information.
// This is a domain-level representation used by infrastructure services
// that need access to configuration with source tracking.
type ConfigValue struct {
	Value  any
	Source string // "database", "environment", or "default"
}

// Provider defines the interface for providing hot-reloadable configuration.
// Infrastructure services depend on this interface instead of the concrete
// application-layer provider, following the dependency inversion principle.
type Provider interface {
	// GetEmailConfig returns the merged email configuration.
	// Database values take precedence over environment variables.
	GetEmailConfig(ctx context.Context) sharedConfig.EmailConfig

	// GetPanelBaseURL returns the panel base URL with source tracking.
	GetPanelBaseURL(ctx context.Context) ConfigValue

	// GetCompanyName returns the company name shown in outbound messages.
	GetCompanyName(ctx context.Context) string

	// GetAdminEmail returns the address that receives operator reports.
	GetAdminEmail(ctx context.Context) string

	// GetLogoURL returns the logo URL embedded in message templates.
	GetLogoURL(ctx context.Context) string
}
