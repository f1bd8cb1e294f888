package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

func newExpiryRule(t *testing.T, name string, offsets []int) *notification.Rule {
	t.Helper()
	schedule, err := vo.NewOffsetSchedule(offsets)
	require.NoError(t, err)
	fallback := vo.NewPrimaryContactFallback()
	rule, err := notification.NewExpiryRule(name, vo.EntityScopeHosting, schedule, nil, fallback)
	require.NoError(t, err)
	return rule
}

func newRecurringRule(t *testing.T, name string) *notification.Rule {
	t.Helper()
	cadence, err := vo.NewDailyCadence(9, 0)
	require.NoError(t, err)
	fallback, err := vo.NewCustomFallback("ops@example.com")
	require.NoError(t, err)
	rule, err := notification.NewRecurringRule(name, cadence, vo.RuleCategoryReport, nil, fallback)
	require.NoError(t, err)
	return rule
}

func TestNotificationRuleRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRuleRepository(db)
	ctx := context.Background()

	t.Run("round-trips an expiry rule with its schedule", func(t *testing.T) {
		rule := newExpiryRule(t, "expiry-reminders", []int{30, 7, 1})

		err := repo.Create(ctx, rule)
		require.NoError(t, err)
		require.NotZero(t, rule.ID())

		found, err := repo.GetByID(ctx, rule.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, rule.Name(), found.Name())
		assert.True(t, found.Class().IsExpiry())
		assert.Equal(t, []int{30, 7, 1}, found.Schedule().Values())
		assert.True(t, found.Fallback().IsPrimaryContact())
	})

	t.Run("round-trips a recurring rule with its cadence", func(t *testing.T) {
		rule := newRecurringRule(t, "daily-report")

		err := repo.Create(ctx, rule)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, rule.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Class().IsRecurring())
		assert.Equal(t, vo.FrequencyDaily, found.Cadence().Frequency())
		assert.Equal(t, 9, found.Cadence().AtHour())
		assert.Equal(t, vo.RuleCategoryReport, found.Category())
		assert.Equal(t, "ops@example.com", found.Fallback().Address())
	})

	t.Run("returns nil for an unknown id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestNotificationRuleRepository_ListEnabledByClass(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRuleRepository(db)
	ctx := context.Background()

	enabled := newExpiryRule(t, "enabled-expiry", []int{7})
	require.NoError(t, repo.Create(ctx, enabled))

	disabled := newExpiryRule(t, "disabled-expiry", []int{14})
	disabled.Disable()
	require.NoError(t, repo.Create(ctx, disabled))

	recurring := newRecurringRule(t, "daily-report")
	require.NoError(t, repo.Create(ctx, recurring))

	expiryRules, err := repo.ListEnabledByClass(ctx, vo.RuleClassExpiry)
	require.NoError(t, err)
	require.Len(t, expiryRules, 1)
	assert.Equal(t, "enabled-expiry", expiryRules[0].Name())

	recurringRules, err := repo.ListEnabledByClass(ctx, vo.RuleClassRecurring)
	require.NoError(t, err)
	require.Len(t, recurringRules, 1)
	assert.Equal(t, "daily-report", recurringRules[0].Name())
}

func TestNotificationRuleRepository_UpdateLastDispatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRuleRepository(db)
	ctx := context.Background()

	rule := newRecurringRule(t, "daily-report")
	require.NoError(t, repo.Create(ctx, rule))
	require.Nil(t, rule.LastDispatchAt())

	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	err := repo.UpdateLastDispatch(ctx, rule.ID(), at)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, rule.ID())
	require.NoError(t, err)
	require.NotNil(t, found.LastDispatchAt())
	assert.True(t, found.LastDispatchAt().Equal(at))

	err = repo.UpdateLastDispatch(ctx, 9999, at)
	assert.Error(t, err)
}
