package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

var testNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func testRecord(t *testing.T, id uint, domain, clientEmail string, expiresAt time.Time) *hosting.Record {
	t.Helper()
	record, err := hosting.ReconstructRecord(
		id,
		domain,
		"basic",
		hosting.StatusActive,
		1,
		"Acme Client",
		"Acme Co",
		hosting.Contacts{ClientEmail: clientEmail},
		expiresAt,
		testNow.AddDate(0, -6, 0),
	)
	require.NoError(t, err)
	return record
}

func testExpiryRule(t *testing.T, id uint, offsets []int) *notification.Rule {
	t.Helper()
	schedule, err := vo.NewOffsetSchedule(offsets)
	require.NoError(t, err)
	rule, err := notification.ReconstructRule(
		id,
		"expiry-reminders",
		vo.RuleClassExpiry,
		vo.EntityScopeHosting,
		schedule,
		vo.Cadence{},
		"",
		nil,
		vo.NewPrimaryContactFallback(),
		false,
		true,
		nil,
		1,
		testNow, testNow,
	)
	require.NoError(t, err)
	return rule
}

func testRecurringRule(t *testing.T, id uint, cadence vo.Cadence, category vo.RuleCategory, fallback vo.FallbackRecipient) *notification.Rule {
	t.Helper()
	rule, err := notification.ReconstructRule(
		id,
		"recurring-report",
		vo.RuleClassRecurring,
		"",
		vo.OffsetSchedule{},
		cadence,
		category,
		nil,
		fallback,
		false,
		true,
		nil,
		1,
		testNow, testNow,
	)
	require.NoError(t, err)
	return rule
}

func testReportBuilder(repo hosting.RecordRepository) *ReportBuilder {
	return NewReportBuilder(repo, 30, logger.NewLogger())
}

func listRules(rules ...*notification.Rule) func(ctx context.Context, class vo.RuleClass) ([]*notification.Rule, error) {
	return func(ctx context.Context, class vo.RuleClass) ([]*notification.Rule, error) {
		return rules, nil
	}
}
