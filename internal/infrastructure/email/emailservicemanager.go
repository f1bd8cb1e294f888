package email

import (
	"context"
	"sync"

	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// MailServiceManager rebuilds the SMTP mailer whenever the email settings
// change, so SMTP credentials edited through the admin API take effect
// without a restart.
type MailServiceManager struct {
	provider setting.Provider
	logger   logger.Interface

	mu     sync.RWMutex
	mailer *SMTPMailer
}

func NewMailServiceManager(
	provider setting.Provider,
	logger logger.Interface,
) *MailServiceManager {
	return &MailServiceManager{
		provider: provider,
		logger:   logger,
	}
}

// Initialize creates the mailer based on current configuration.
func (m *MailServiceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.initializeMailerLocked(ctx)
}

func (m *MailServiceManager) initializeMailerLocked(ctx context.Context) error {
	emailCfg := m.provider.GetEmailConfig(ctx)

	if emailCfg.SMTPHost == "" {
		m.mailer = nil
		m.logger.Debugw("mailer not configured, smtp_host is empty")
		return nil
	}

	smtpCfg := SMTPConfig{
		Host:        emailCfg.SMTPHost,
		Port:        emailCfg.SMTPPort,
		Username:    emailCfg.SMTPUser,
		Password:    emailCfg.SMTPPassword,
		FromAddress: emailCfg.FromAddress,
		FromName:    emailCfg.FromName,
	}

	m.mailer = NewSMTPMailer(smtpCfg)
	m.logger.Infow("mailer initialized",
		"host", smtpCfg.Host,
		"port", smtpCfg.Port,
		"from", smtpCfg.FromAddress,
	)

	return nil
}

// OnSettingChange implements the setting change subscriber interface.
func (m *MailServiceManager) OnSettingChange(ctx context.Context, category string, changes map[string]any) error {
	needsReload := false
	switch category {
	case "system":
		if _, ok := changes["from_name"]; ok {
			needsReload = true
		}
	case "email":
		needsReload = true
	}

	if needsReload {
		m.logger.Infow("email configuration changed, reinitializing mailer",
			"category", category,
		)
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.initializeMailerLocked(ctx)
	}

	return nil
}

// GetMailer returns the current mailer, or nil when SMTP is not configured.
func (m *MailServiceManager) GetMailer() *SMTPMailer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mailer
}

// IsConfigured reports whether SMTP delivery is available.
func (m *MailServiceManager) IsConfigured() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mailer != nil
}
