package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

func newSweepFixture(t *testing.T) (*ExpirySweepUseCase, *mockRuleRepo, *mockLedger, *mockMailer, *mockSource) {
	t.Helper()

	ruleRepo := &mockRuleRepo{}
	templateRepo := &mockTemplateRepo{}
	ledger := &mockLedger{}
	mailer := &mockMailer{}
	source := &mockSource{}
	settings := &mockSettings{companyName: "Tansy Hosting", adminEmail: "admin@tansy.test"}

	uc := NewExpirySweepUseCase(
		ruleRepo,
		templateRepo,
		ledger,
		SourceRegistry{vo.EntityScopeHosting: source},
		mailer,
		&mockRenderer{},
		&mockAttachments{},
		testReportBuilder(&mockHostingRepo{}),
		settings,
		5*time.Second,
		logger.NewLogger(),
	)
	uc.now = func() time.Time { return testNow }

	return uc, ruleRepo, ledger, mailer, source
}

func TestExpirySweep_SendsAndRecords(t *testing.T) {
	uc, ruleRepo, ledger, mailer, source := newSweepFixture(t)

	rule := testExpiryRule(t, 1, []int{7})
	ruleRepo.listEnabledByClassFn = listRules(rule)

	record := testRecord(t, 10, "a.example.com", "client@example.com", testNow.AddDate(0, 0, 7))
	source.findExpiringOnFn = func(ctx context.Context, day time.Time) ([]*hosting.Record, error) {
		return []*hosting.Record{record}, nil
	}

	attempted, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, attempted)

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "client@example.com", messages[0].To)
	assert.Contains(t, messages[0].Subject, "a.example.com")
	assert.Contains(t, messages[0].HTMLBody, "Acme Client")

	records := ledger.records()
	require.Len(t, records, 1)
	assert.Equal(t, vo.DispatchKindMail, records[0].Kind())
	assert.Equal(t, uint(10), records[0].ReferenceID())
	assert.Equal(t, vo.DispatchStatusSent, records[0].Status())
}

func TestExpirySweep_LedgerSuppressesResend(t *testing.T) {
	uc, ruleRepo, ledger, mailer, source := newSweepFixture(t)

	rule := testExpiryRule(t, 1, []int{7})
	ruleRepo.listEnabledByClassFn = listRules(rule)

	record := testRecord(t, 10, "a.example.com", "client@example.com", testNow.AddDate(0, 0, 7))
	source.findExpiringOnFn = func(ctx context.Context, day time.Time) ([]*hosting.Record, error) {
		return []*hosting.Record{record}, nil
	}
	ledger.existsFn = func(ctx context.Context, kind vo.DispatchKind, referenceID uint, recipient string) (bool, error) {
		return true, nil
	}

	attempted, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, attempted)
	assert.Empty(t, mailer.messages())
	assert.Empty(t, ledger.records())
}

func TestExpirySweep_FailedSendIsRecordedAndPassContinues(t *testing.T) {
	uc, ruleRepo, ledger, mailer, source := newSweepFixture(t)

	rule := testExpiryRule(t, 1, []int{7})
	ruleRepo.listEnabledByClassFn = listRules(rule)

	broken := testRecord(t, 10, "broken.example.com", "broken@example.com", testNow.AddDate(0, 0, 7))
	healthy := testRecord(t, 11, "ok.example.com", "ok@example.com", testNow.AddDate(0, 0, 7))
	source.findExpiringOnFn = func(ctx context.Context, day time.Time) ([]*hosting.Record, error) {
		return []*hosting.Record{broken, healthy}, nil
	}
	mailer.sendFn = func(ctx context.Context, msg email.OutboundEmail) error {
		if msg.To == "broken@example.com" {
			return assert.AnError
		}
		return nil
	}

	attempted, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempted)

	records := ledger.records()
	require.Len(t, records, 2)
	assert.Equal(t, vo.DispatchStatusFailed, records[0].Status())
	assert.Equal(t, vo.DispatchStatusSent, records[1].Status())

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "ok@example.com", messages[0].To)
}

func TestExpirySweep_UnresolvableRecipientIsSilentNoOp(t *testing.T) {
	uc, ruleRepo, ledger, mailer, source := newSweepFixture(t)

	rule := testExpiryRule(t, 1, []int{7})
	ruleRepo.listEnabledByClassFn = listRules(rule)

	record := testRecord(t, 10, "a.example.com", "", testNow.AddDate(0, 0, 7))
	source.findExpiringOnFn = func(ctx context.Context, day time.Time) ([]*hosting.Record, error) {
		return []*hosting.Record{record}, nil
	}

	attempted, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, attempted)
	assert.Empty(t, mailer.messages())
	assert.Empty(t, ledger.records(), "an unresolvable recipient is a configuration error, not a delivery attempt")
}

func TestExpirySweep_RuleListingFailureIsFatal(t *testing.T) {
	uc, ruleRepo, _, _, _ := newSweepFixture(t)

	ruleRepo.listEnabledByClassFn = func(ctx context.Context, class vo.RuleClass) ([]*notification.Rule, error) {
		return nil, assert.AnError
	}

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
