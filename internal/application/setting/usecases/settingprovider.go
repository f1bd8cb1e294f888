package usecases

import (
	"context"
	"fmt"
	"sync"

	settingDTO "github.com/tansyhq/tansy/internal/application/setting/dto"
	"github.com/tansyhq/tansy/internal/domain/setting"
	sharedConfig "github.com/tansyhq/tansy/internal/shared/config"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// SettingChangeSubscriber defines the interface for setting change subscribers
type SettingChangeSubscriber interface {
	OnSettingChange(ctx context.Context, category string, changes map[string]any) error
}

// SettingProviderConfig holds all fallback configurations from environment
type SettingProviderConfig struct {
	EmailConfig  sharedConfig.EmailConfig
	PanelBaseURL string
	Timezone     string
	CompanyName  string
	AdminEmail   string
	LogoURL      string
}

// SettingProvider provides hot-reloadable configuration with database-first,
// env-fallback logic. Category reads are cached in memory; Invalidate (or a
// NotifyChange) drops the cache so the next read sees fresh rows.
type SettingProvider struct {
	settingRepo setting.Repository
	logger      logger.Interface

	panelBaseURL string
	timezone     string
	companyName  string
	adminEmail   string
	logoURL      string
	emailConfig  sharedConfig.EmailConfig

	cacheMu sync.RWMutex
	cache   map[string][]*setting.Setting

	mu          sync.RWMutex
	subscribers []SettingChangeSubscriber
}

// NewSettingProvider creates a new SettingProvider
func NewSettingProvider(
	settingRepo setting.Repository,
	cfg SettingProviderConfig,
	logger logger.Interface,
) *SettingProvider {
	return &SettingProvider{
		settingRepo:  settingRepo,
		panelBaseURL: cfg.PanelBaseURL,
		timezone:     cfg.Timezone,
		companyName:  cfg.CompanyName,
		adminEmail:   cfg.AdminEmail,
		logoURL:      cfg.LogoURL,
		emailConfig:  cfg.EmailConfig,
		logger:       logger,
		cache:        make(map[string][]*setting.Setting),
		subscribers:  make([]SettingChangeSubscriber, 0),
	}
}

// Subscribe registers a subscriber for setting changes
func (p *SettingProvider) Subscribe(subscriber SettingChangeSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from the list
func (p *SettingProvider) Unsubscribe(subscriber SettingChangeSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, s := range p.subscribers {
		if s == subscriber {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			break
		}
	}
}

// Invalidate drops the in-memory settings cache.
func (p *SettingProvider) Invalidate() {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	p.cache = make(map[string][]*setting.Setting)
}

// NotifyChange invalidates the cache and notifies all subscribers of
// configuration changes.
func (p *SettingProvider) NotifyChange(ctx context.Context, category string, changes map[string]any) error {
	p.Invalidate()

	p.mu.RLock()
	subscribers := make([]SettingChangeSubscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	var errs []error
	for _, subscriber := range subscribers {
		if err := subscriber.OnSettingChange(ctx, category, changes); err != nil {
			p.logger.Errorw("subscriber failed to handle setting change",
				"category", category,
				"subscriber", fmt.Sprintf("%T", subscriber),
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to notify %d/%d subscribers, first error: %w", len(errs), len(subscribers), errs[0])
	}

	return nil
}

// getCategory reads a settings category through the cache.
func (p *SettingProvider) getCategory(ctx context.Context, category string) ([]*setting.Setting, error) {
	p.cacheMu.RLock()
	cached, ok := p.cache[category]
	p.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	settings, err := p.settingRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[category] = settings
	p.cacheMu.Unlock()

	return settings, nil
}

// GetString retrieves a string setting value
// Database values take precedence over default
func (p *SettingProvider) GetString(ctx context.Context, category, key, defaultValue string) string {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	return s.GetStringValue()
}

// GetInt retrieves an int setting value
// Database values take precedence over default
func (p *SettingProvider) GetInt(ctx context.Context, category, key string, defaultValue int) int {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	val, err := s.GetIntValue()
	if err != nil {
		return defaultValue
	}
	return val
}

// GetBool retrieves a bool setting value
// Database values take precedence over default
func (p *SettingProvider) GetBool(ctx context.Context, category, key string, defaultValue bool) bool {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	val, err := s.GetBoolValue()
	if err != nil {
		return defaultValue
	}
	return val
}

// GetEmailConfig returns the merged Email configuration
// Database values take precedence over environment variables
func (p *SettingProvider) GetEmailConfig(ctx context.Context) sharedConfig.EmailConfig {
	config := p.emailConfig

	settings, err := p.getCategory(ctx, setting.CategoryEmail)
	if err != nil {
		p.logger.Warnw("failed to get email settings from database, using env config", "error", err)
		return config
	}

	for _, s := range settings {
		switch s.Key() {
		case "smtp_host":
			if s.HasValue() {
				config.SMTPHost = s.GetStringValue()
			}
		case "smtp_port":
			if s.HasValue() {
				if port, err := s.GetIntValue(); err == nil {
					config.SMTPPort = port
				}
			}
		case "smtp_user":
			if s.HasValue() {
				config.SMTPUser = s.GetStringValue()
			}
		case "smtp_password":
			if s.HasValue() {
				config.SMTPPassword = s.GetStringValue()
			}
		case "from_address":
			if s.HasValue() {
				config.FromAddress = s.GetStringValue()
			}
		case "from_name":
			if s.HasValue() {
				config.FromName = s.GetStringValue()
			}
		}
	}

	return config
}

// GetPanelBaseURL returns the panel base URL with source tracking
// Priority: Database > Environment > Default
func (p *SettingProvider) GetPanelBaseURL(ctx context.Context) setting.ConfigValue {
	if s, err := p.settingRepo.GetByKey(ctx, setting.CategorySystem, "panel_base_url"); err == nil && s != nil && s.HasValue() {
		return setting.ConfigValue{
			Value:  s.GetStringValue(),
			Source: settingDTO.SourceDatabase,
		}
	}
	if p.panelBaseURL != "" {
		return setting.ConfigValue{
			Value:  p.panelBaseURL,
			Source: settingDTO.SourceEnvironment,
		}
	}
	return setting.ConfigValue{
		Value:  "http://localhost:8080",
		Source: settingDTO.SourceDefault,
	}
}

// GetCompanyName returns the company name shown in outbound messages.
func (p *SettingProvider) GetCompanyName(ctx context.Context) string {
	return p.GetString(ctx, setting.CategorySystem, "company_name", p.companyName)
}

// GetAdminEmail returns the address that receives operator reports.
func (p *SettingProvider) GetAdminEmail(ctx context.Context) string {
	return p.GetString(ctx, setting.CategorySystem, "admin_email", p.adminEmail)
}

// GetLogoURL returns the logo URL embedded in message templates.
func (p *SettingProvider) GetLogoURL(ctx context.Context) string {
	return p.GetString(ctx, setting.CategorySystem, "logo_url", p.logoURL)
}

// GetTimezone returns the timezone (read-only from environment)
func (p *SettingProvider) GetTimezone(_ context.Context) settingDTO.SettingWithSource {
	return settingDTO.SettingWithSource{
		Value:  p.timezone,
		Source: settingDTO.SourceEnvironment,
	}
}
