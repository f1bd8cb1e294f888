package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// RecurringPassUseCase evaluates recurring rule cadences once a minute and
// sends the due category reports. lastDispatchAt advances only on a
// successful send, so a failed report is retried on the next matching tick.
type RecurringPassUseCase struct {
	itemDispatcher

	ruleRepo notification.RuleRepository
	now      func() time.Time
}

func NewRecurringPassUseCase(
	ruleRepo notification.RuleRepository,
	templateRepo notification.TemplateRepository,
	ledger notification.DispatchRecordRepository,
	mailer Mailer,
	renderer ReportRenderer,
	reports *ReportBuilder,
	settings setting.Provider,
	sendTimeout time.Duration,
	logger logger.Interface,
) *RecurringPassUseCase {
	return &RecurringPassUseCase{
		itemDispatcher: itemDispatcher{
			templateRepo: templateRepo,
			ledger:       ledger,
			mailer:       mailer,
			renderer:     renderer,
			reports:      reports,
			settings:     settings,
			sendTimeout:  sendTimeout,
			logger:       logger,
		},
		ruleRepo: ruleRepo,
		now:      biztime.NowUTC,
	}
}

// Execute returns the number of reports sent this tick.
func (uc *RecurringPassUseCase) Execute(ctx context.Context) (int, error) {
	rules, err := uc.ruleRepo.ListEnabledByClass(ctx, vo.RuleClassRecurring)
	if err != nil {
		return 0, fmt.Errorf("failed to list recurring rules: %w", err)
	}

	now := uc.now()
	sent := 0

	for _, rule := range rules {
		if rule.Cadence().IsZero() {
			uc.logger.Warnw("recurring rule has no cadence, skipping",
				"rule_id", rule.ID(),
				"name", rule.Name(),
			)
			continue
		}
		if !rule.DueAt(now) {
			continue
		}

		if uc.sendReport(ctx, rule, now) {
			sent++
		}
	}

	return sent, nil
}

func (uc *RecurringPassUseCase) sendReport(ctx context.Context, rule *notification.Rule, now time.Time) bool {
	to := resolveRuleRecipient(rule.Fallback(), uc.settings.GetAdminEmail(ctx))
	if to == "" {
		uc.logger.Infow("no resolvable recipient for recurring rule, skipping",
			"rule_id", rule.ID(),
			"name", rule.Name(),
		)
		return false
	}

	md, err := uc.reports.Build(ctx, rule.Category(), now)
	if err != nil {
		uc.logger.Errorw("failed to build report",
			"rule_id", rule.ID(),
			"category", rule.Category(),
			"error", err,
		)
		return false
	}

	fragment, err := uc.renderer.RenderFragment(md)
	if err != nil {
		uc.logger.Errorw("failed to render report fragment",
			"rule_id", rule.ID(),
			"error", err,
		)
		return false
	}

	vars := baseVariables(ctx, uc.settings, now)
	vars["report"] = fragment
	vars["reportTitle"] = reportTitle(rule.Category())

	template := uc.loadTemplate(ctx, rule.TemplateID())
	subject, body := renderReportMessage(template, vars)

	msg := email.OutboundEmail{
		To:       to,
		Subject:  subject,
		HTMLBody: body,
	}
	if rule.AttachReport() {
		if doc := uc.buildReportDocument(ctx, rule.Category(), now); doc != nil {
			msg.Attachments = append(msg.Attachments, *doc)
		}
	}

	if err := uc.deliver(ctx, vo.DispatchKindReport, rule.ID(), msg); err != nil {
		// Failed sends leave lastDispatchAt untouched so the next matching
		// tick retries.
		if !errors.Is(err, email.ErrMailerNotConfigured) {
			uc.logger.Warnw("recurring report send failed, will retry on next matching tick",
				"rule_id", rule.ID(),
			)
		}
		return false
	}

	rule.MarkDispatched(now)
	if err := uc.ruleRepo.UpdateLastDispatch(ctx, rule.ID(), now); err != nil {
		uc.logger.Errorw("failed to persist last dispatch time",
			"rule_id", rule.ID(),
			"error", err,
		)
	}
	return true
}
