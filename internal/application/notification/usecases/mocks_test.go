package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/domain/setting"
	sharedConfig "github.com/tansyhq/tansy/internal/shared/config"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/infrastructure/files"
)

type mockRuleRepo struct {
	notification.RuleRepository

	listEnabledByClassFn func(ctx context.Context, class vo.RuleClass) ([]*notification.Rule, error)
	getByIDFn            func(ctx context.Context, id uint) (*notification.Rule, error)

	mu             sync.Mutex
	lastDispatches map[uint]time.Time
}

func (m *mockRuleRepo) ListEnabledByClass(ctx context.Context, class vo.RuleClass) ([]*notification.Rule, error) {
	return m.listEnabledByClassFn(ctx, class)
}

func (m *mockRuleRepo) GetByID(ctx context.Context, id uint) (*notification.Rule, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRuleRepo) UpdateLastDispatch(ctx context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastDispatches == nil {
		m.lastDispatches = make(map[uint]time.Time)
	}
	m.lastDispatches[id] = at
	return nil
}

func (m *mockRuleRepo) lastDispatchOf(id uint) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.lastDispatches[id]
	return at, ok
}

type mockTemplateRepo struct {
	notification.TemplateRepository

	getByIDFn func(ctx context.Context, id uint) (*notification.MessageTemplate, error)
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id uint) (*notification.MessageTemplate, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(ctx, id)
}

type mockLedger struct {
	existsFn func(ctx context.Context, kind vo.DispatchKind, referenceID uint, recipient string) (bool, error)

	mu           sync.Mutex
	appended     []*notification.DispatchRecord
	existsCalled bool
}

func (m *mockLedger) Append(ctx context.Context, record *notification.DispatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appended = append(m.appended, record)
	return nil
}

func (m *mockLedger) Exists(ctx context.Context, kind vo.DispatchKind, referenceID uint, recipient string) (bool, error) {
	m.mu.Lock()
	m.existsCalled = true
	m.mu.Unlock()
	if m.existsFn == nil {
		return false, nil
	}
	return m.existsFn(ctx, kind, referenceID, recipient)
}

func (m *mockLedger) ListRecent(ctx context.Context, limit int) ([]*notification.DispatchRecord, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := m.appended
	if len(records) > limit {
		records = records[:limit]
	}
	return records, int64(len(m.appended)), nil
}

func (m *mockLedger) ListByReference(ctx context.Context, kind vo.DispatchKind, referenceID uint, limit int) ([]*notification.DispatchRecord, error) {
	return nil, nil
}

func (m *mockLedger) records() []*notification.DispatchRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*notification.DispatchRecord, len(m.appended))
	copy(out, m.appended)
	return out
}

type mockMailer struct {
	sendFn func(ctx context.Context, msg email.OutboundEmail) error

	mu   sync.Mutex
	sent []email.OutboundEmail
}

func (m *mockMailer) Send(ctx context.Context, msg email.OutboundEmail) error {
	if m.sendFn != nil {
		if err := m.sendFn(ctx, msg); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockMailer) messages() []email.OutboundEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]email.OutboundEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

type mockRenderer struct{}

func (m *mockRenderer) RenderFragment(content string) (string, error) {
	return "<div>" + content + "</div>", nil
}

func (m *mockRenderer) RenderDocument(title, content string) ([]byte, error) {
	return []byte("<html>" + title + content + "</html>"), nil
}

type mockAttachments struct {
	resolveFn func(entityID uint) ([]files.ResolvedFile, error)
}

func (m *mockAttachments) Resolve(entityID uint) ([]files.ResolvedFile, error) {
	if m.resolveFn == nil {
		return nil, nil
	}
	return m.resolveFn(entityID)
}

type mockSource struct {
	getByIDFn             func(ctx context.Context, id uint) (*hosting.Record, error)
	findExpiringOnFn      func(ctx context.Context, day time.Time) ([]*hosting.Record, error)
	findExpiringBetweenFn func(ctx context.Context, from, to time.Time) ([]*hosting.Record, error)
}

func (m *mockSource) GetByID(ctx context.Context, id uint) (*hosting.Record, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockSource) FindExpiringOn(ctx context.Context, day time.Time) ([]*hosting.Record, error) {
	if m.findExpiringOnFn == nil {
		return nil, nil
	}
	return m.findExpiringOnFn(ctx, day)
}

func (m *mockSource) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*hosting.Record, error) {
	if m.findExpiringBetweenFn == nil {
		return nil, nil
	}
	return m.findExpiringBetweenFn(ctx, from, to)
}

type mockHostingRepo struct {
	hosting.RecordRepository

	findExpiringBetweenFn func(ctx context.Context, from, to time.Time) ([]*hosting.Record, error)
	countByStatusFn       func(ctx context.Context) ([]hosting.StatusCount, error)
	countByPlanFn         func(ctx context.Context) ([]hosting.PlanCount, error)
	countCreatedBetweenFn func(ctx context.Context, from, to time.Time) (int64, error)
}

func (m *mockHostingRepo) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*hosting.Record, error) {
	if m.findExpiringBetweenFn == nil {
		return nil, nil
	}
	return m.findExpiringBetweenFn(ctx, from, to)
}

func (m *mockHostingRepo) CountByStatus(ctx context.Context) ([]hosting.StatusCount, error) {
	if m.countByStatusFn == nil {
		return nil, nil
	}
	return m.countByStatusFn(ctx)
}

func (m *mockHostingRepo) CountByPlan(ctx context.Context) ([]hosting.PlanCount, error) {
	if m.countByPlanFn == nil {
		return nil, nil
	}
	return m.countByPlanFn(ctx)
}

func (m *mockHostingRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.countCreatedBetweenFn == nil {
		return 0, nil
	}
	return m.countCreatedBetweenFn(ctx, from, to)
}

type mockSettings struct {
	companyName string
	adminEmail  string
	logoURL     string
	panelURL    string
}

func (m *mockSettings) GetEmailConfig(ctx context.Context) sharedConfig.EmailConfig {
	return sharedConfig.EmailConfig{}
}

func (m *mockSettings) GetPanelBaseURL(ctx context.Context) setting.ConfigValue {
	return setting.ConfigValue{Value: m.panelURL, Source: "environment"}
}

func (m *mockSettings) GetCompanyName(ctx context.Context) string { return m.companyName }
func (m *mockSettings) GetAdminEmail(ctx context.Context) string  { return m.adminEmail }
func (m *mockSettings) GetLogoURL(ctx context.Context) string     { return m.logoURL }
