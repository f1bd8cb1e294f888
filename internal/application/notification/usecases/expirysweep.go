package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// ExpirySweepUseCase runs one automatic expiry pass: every enabled expiry
// rule, every offset of its schedule, every record expiring on the resolved
// target date. The dispatch ledger makes the pass idempotent per
// (item, recipient).
type ExpirySweepUseCase struct {
	itemDispatcher

	ruleRepo notification.RuleRepository
	sources  SourceRegistry
	now      func() time.Time
}

func NewExpirySweepUseCase(
	ruleRepo notification.RuleRepository,
	templateRepo notification.TemplateRepository,
	ledger notification.DispatchRecordRepository,
	sources SourceRegistry,
	mailer Mailer,
	renderer ReportRenderer,
	attachments AttachmentResolver,
	reports *ReportBuilder,
	settings setting.Provider,
	sendTimeout time.Duration,
	logger logger.Interface,
) *ExpirySweepUseCase {
	return &ExpirySweepUseCase{
		itemDispatcher: itemDispatcher{
			templateRepo: templateRepo,
			ledger:       ledger,
			mailer:       mailer,
			renderer:     renderer,
			attachments:  attachments,
			reports:      reports,
			settings:     settings,
			sendTimeout:  sendTimeout,
			logger:       logger,
		},
		ruleRepo: ruleRepo,
		sources:  sources,
		now:      biztime.NowUTC,
	}
}

// Execute returns the number of sends attempted. Per-item failures are
// recorded in the ledger and never abort the pass; only failing to list the
// rules is fatal.
func (uc *ExpirySweepUseCase) Execute(ctx context.Context) (int, error) {
	rules, err := uc.ruleRepo.ListEnabledByClass(ctx, vo.RuleClassExpiry)
	if err != nil {
		return 0, fmt.Errorf("failed to list expiry rules: %w", err)
	}

	now := uc.now()
	attempted := 0

	for _, rule := range rules {
		source := uc.sources.Source(rule.EntityScope())
		if source == nil {
			uc.logger.Warnw("no source registered for entity scope, skipping rule",
				"rule_id", rule.ID(),
				"scope", rule.EntityScope(),
			)
			continue
		}

		template := uc.loadTemplate(ctx, rule.TemplateID())

		for _, offset := range rule.Schedule().Values() {
			targetDate := vo.TargetDate(now, offset)

			items, err := source.FindExpiringOn(ctx, targetDate)
			if err != nil {
				uc.logger.Errorw("failed to load expiring records",
					"rule_id", rule.ID(),
					"offset", offset,
					"target_date", biztime.FormatInBizTimezone(targetDate, dateLayout),
					"error", err,
				)
				continue
			}

			for _, item := range items {
				outcome := uc.dispatchItem(ctx, rule, template, item, now, false)
				if outcome == outcomeSent || outcome == outcomeFailed {
					attempted++
				}
			}
		}
	}

	return attempted, nil
}
