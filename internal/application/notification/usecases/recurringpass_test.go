package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

func newRecurringFixture(t *testing.T, hostingRepo *mockHostingRepo) (*RecurringPassUseCase, *mockRuleRepo, *mockLedger, *mockMailer) {
	t.Helper()

	ruleRepo := &mockRuleRepo{}
	ledger := &mockLedger{}
	mailer := &mockMailer{}
	settings := &mockSettings{companyName: "Tansy Hosting", adminEmail: "admin@tansy.test"}

	uc := NewRecurringPassUseCase(
		ruleRepo,
		&mockTemplateRepo{},
		ledger,
		mailer,
		&mockRenderer{},
		testReportBuilder(hostingRepo),
		settings,
		5*time.Second,
		logger.NewLogger(),
	)
	uc.now = func() time.Time { return testNow }

	return uc, ruleRepo, ledger, mailer
}

func dailyAtNineCadence(t *testing.T) vo.Cadence {
	t.Helper()
	cadence, err := vo.NewDailyCadence(9, 0)
	require.NoError(t, err)
	return cadence
}

func TestRecurringPass_SendsDueReportAndAdvancesLastDispatch(t *testing.T) {
	uc, ruleRepo, ledger, mailer := newRecurringFixture(t, &mockHostingRepo{})

	fallback, err := vo.NewCustomFallback("ops@example.com")
	require.NoError(t, err)
	rule := testRecurringRule(t, 5, dailyAtNineCadence(t), vo.RuleCategorySystem, fallback)
	ruleRepo.listEnabledByClassFn = listRules(rule)

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "ops@example.com", messages[0].To)
	assert.Contains(t, messages[0].HTMLBody, "Panel status")

	records := ledger.records()
	require.Len(t, records, 1)
	assert.Equal(t, vo.DispatchKindReport, records[0].Kind())
	assert.Equal(t, uint(5), records[0].ReferenceID())

	require.NotNil(t, rule.LastDispatchAt())
	assert.True(t, rule.LastDispatchAt().Equal(testNow))
	persisted, ok := ruleRepo.lastDispatchOf(5)
	require.True(t, ok)
	assert.True(t, persisted.Equal(testNow))
}

func TestRecurringPass_NotDueRuleIsSkipped(t *testing.T) {
	uc, ruleRepo, ledger, mailer := newRecurringFixture(t, &mockHostingRepo{})

	cadence, err := vo.NewDailyCadence(15, 30)
	require.NoError(t, err)
	fallback, err := vo.NewCustomFallback("ops@example.com")
	require.NoError(t, err)
	rule := testRecurringRule(t, 5, cadence, vo.RuleCategorySystem, fallback)
	ruleRepo.listEnabledByClassFn = listRules(rule)

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.messages())
	assert.Empty(t, ledger.records())
	assert.Nil(t, rule.LastDispatchAt())
}

func TestRecurringPass_FailedSendLeavesLastDispatchForRetry(t *testing.T) {
	uc, ruleRepo, ledger, mailer := newRecurringFixture(t, &mockHostingRepo{})

	fallback, err := vo.NewCustomFallback("ops@example.com")
	require.NoError(t, err)
	rule := testRecurringRule(t, 5, dailyAtNineCadence(t), vo.RuleCategorySystem, fallback)
	ruleRepo.listEnabledByClassFn = listRules(rule)
	mailer.sendFn = func(ctx context.Context, msg email.OutboundEmail) error {
		return assert.AnError
	}

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)

	records := ledger.records()
	require.Len(t, records, 1, "failed sends still leave an audit row")
	assert.Equal(t, vo.DispatchStatusFailed, records[0].Status())

	assert.Nil(t, rule.LastDispatchAt(), "failed send must not advance last dispatch")
	_, ok := ruleRepo.lastDispatchOf(5)
	assert.False(t, ok)
}

func TestRecurringPass_PrimaryContactFallbackSendsToAdmin(t *testing.T) {
	uc, ruleRepo, _, mailer := newRecurringFixture(t, &mockHostingRepo{})

	rule := testRecurringRule(t, 5, dailyAtNineCadence(t), vo.RuleCategorySales, vo.NewPrimaryContactFallback())
	ruleRepo.listEnabledByClassFn = listRules(rule)

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "admin@tansy.test", messages[0].To)
}

func TestRecurringPass_ReportCategoryListsExpiringRecords(t *testing.T) {
	record := testRecord(t, 10, "soon.example.com", "client@example.com", testNow.AddDate(0, 0, 3))
	hostingRepo := &mockHostingRepo{
		findExpiringBetweenFn: func(ctx context.Context, from, to time.Time) ([]*hosting.Record, error) {
			return []*hosting.Record{record}, nil
		},
	}
	uc, ruleRepo, _, mailer := newRecurringFixture(t, hostingRepo)

	fallback, err := vo.NewCustomFallback("ops@example.com")
	require.NoError(t, err)
	rule := testRecurringRule(t, 5, dailyAtNineCadence(t), vo.RuleCategoryReport, fallback)
	ruleRepo.listEnabledByClassFn = listRules(rule)

	sent, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].HTMLBody, "soon.example.com")
}
