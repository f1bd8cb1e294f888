package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tansyhq/tansy/internal/application/notification/dto"
	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/domain/notification"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

var (
	// ErrRuleNotFound is returned when the triggered rule does not exist.
	ErrRuleNotFound = errors.New("notification rule not found")
	// ErrNotExpiryRule is returned when a recurring rule is triggered
	// manually; recurring rules fire on their cadence only.
	ErrNotExpiryRule = errors.New("only expiry rules can be triggered manually")
	// ErrItemNotFound is returned when the requested record does not exist.
	ErrItemNotFound = errors.New("record not found")
)

// TriggerRuleCommand selects the rule and optionally a single record.
type TriggerRuleCommand struct {
	RuleID uint
	ItemID *uint
}

// TriggerRuleUseCase is the manual operator path for expiry rules. It sends
// WITHOUT consulting the dispatch ledger (an operator triggering a rule
// wants the mail resent) but still appends ledger rows for audit.
type TriggerRuleUseCase struct {
	itemDispatcher

	ruleRepo notification.RuleRepository
	sources  SourceRegistry
	now      func() time.Time
}

func NewTriggerRuleUseCase(
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
) *TriggerRuleUseCase {
	return &TriggerRuleUseCase{
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

func (uc *TriggerRuleUseCase) Execute(ctx context.Context, cmd TriggerRuleCommand) (*dto.TriggerResult, error) {
	rule, err := uc.ruleRepo.GetByID(ctx, cmd.RuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}
	if !rule.Class().IsExpiry() {
		return nil, ErrNotExpiryRule
	}

	source := uc.sources.Source(rule.EntityScope())
	if source == nil {
		return nil, fmt.Errorf("no source registered for entity scope %s", rule.EntityScope())
	}

	now := uc.now()

	items, err := uc.matchItems(ctx, rule, source, cmd.ItemID, now)
	if err != nil {
		return nil, err
	}

	template := uc.loadTemplate(ctx, rule.TemplateID())
	result := &dto.TriggerResult{Matched: len(items)}

	for _, item := range items {
		switch uc.dispatchItem(ctx, rule, template, item, now, true) {
		case outcomeSent:
			result.Sent++
		case outcomeFailed:
			result.Failed++
		default:
			result.Skipped++
		}
	}

	uc.logger.Infow("manual trigger completed",
		"rule_id", rule.ID(),
		"matched", result.Matched,
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)

	return result, nil
}

// matchItems selects the records a trigger addresses: the single record by
// id, or every record expiring inside the schedule's [min, max] date window.
func (uc *TriggerRuleUseCase) matchItems(
	ctx context.Context,
	rule *notification.Rule,
	source ExpirySource,
	itemID *uint,
	now time.Time,
) ([]*hosting.Record, error) {
	if itemID != nil {
		item, err := source.GetByID(ctx, *itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to load record: %w", err)
		}
		if item == nil {
			return nil, ErrItemNotFound
		}
		return []*hosting.Record{item}, nil
	}

	from, to, err := rule.Schedule().Window(now)
	if err != nil {
		return nil, fmt.Errorf("rule has no usable schedule: %w", err)
	}

	items, err := source.FindExpiringBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load records in window %s..%s: %w",
			biztime.FormatInBizTimezone(from, dateLayout),
			biztime.FormatInBizTimezone(to, dateLayout),
			err,
		)
	}
	return items, nil
}
