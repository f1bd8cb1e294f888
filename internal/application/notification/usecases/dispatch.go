package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/infrastructure/email"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/metrics"
	"github.com/tansyhq/tansy/internal/shared/utils"
)

// dispatchOutcome classifies what happened to one item during a pass.
type dispatchOutcome int

const (
	outcomeSkipped dispatchOutcome = iota
	outcomeSuppressed
	outcomeSent
	outcomeFailed
)

// itemDispatcher carries the collaborators shared by the expiry sweep and
// the manual trigger: recipient resolution, rendering, attachment assembly,
// delivery and ledger bookkeeping for a single expiry item.
type itemDispatcher struct {
	templateRepo notification.TemplateRepository
	ledger       notification.DispatchRecordRepository
	mailer       Mailer
	renderer     ReportRenderer
	attachments  AttachmentResolver
	reports      *ReportBuilder
	settings     setting.Provider
	sendTimeout  time.Duration
	logger       logger.Interface
}

// loadTemplate fetches a rule's template. Missing, disabled, or unreadable
// templates yield nil so the caller falls back to the built-in message.
func (d *itemDispatcher) loadTemplate(ctx context.Context, templateID *uint) *notification.MessageTemplate {
	if templateID == nil {
		return nil
	}

	template, err := d.templateRepo.GetByID(ctx, *templateID)
	if err != nil {
		d.logger.Warnw("failed to load message template, using default message",
			"template_id", *templateID,
			"error", err,
		)
		return nil
	}
	if template == nil || !template.IsEnabled() {
		return nil
	}
	return template
}

// dispatchItem runs the full per-item path for one expiry rule match. With
// bypassLedger false (the automatic sweep) a prior ledger row for the tuple
// suppresses the send; the manual trigger passes true because resending is
// the point.
func (d *itemDispatcher) dispatchItem(
	ctx context.Context,
	rule *notification.Rule,
	template *notification.MessageTemplate,
	item *hosting.Record,
	now time.Time,
	bypassLedger bool,
) dispatchOutcome {
	to, cc := resolveItemRecipients(template, rule.Fallback(), item.Contacts().ContactContext())
	if to == "" {
		d.logger.Infow("no resolvable recipient, skipping item",
			"rule_id", rule.ID(),
			"record_id", item.ID(),
			"domain", item.DomainName(),
		)
		return outcomeSkipped
	}

	if !bypassLedger {
		exists, err := d.ledger.Exists(ctx, vo.DispatchKindMail, item.ID(), to)
		if err != nil {
			d.logger.Errorw("failed to check dispatch ledger",
				"record_id", item.ID(),
				"error", err,
			)
			return outcomeSkipped
		}
		if exists {
			metrics.RecordSuppressed()
			d.logger.Debugw("dispatch already recorded, suppressing",
				"rule_id", rule.ID(),
				"record_id", item.ID(),
				"recipient", utils.MaskEmail(to),
			)
			return outcomeSuppressed
		}
	}

	vars := recordVariables(baseVariables(ctx, d.settings, now), item, now)
	subject, body := renderExpiryMessage(template, vars)

	msg := email.OutboundEmail{
		To:          to,
		Cc:          cc,
		Subject:     subject,
		HTMLBody:    body,
		Attachments: d.assembleAttachments(ctx, rule, item, now),
	}

	if err := d.deliver(ctx, vo.DispatchKindMail, item.ID(), msg); err != nil {
		if errors.Is(err, email.ErrMailerNotConfigured) {
			return outcomeSkipped
		}
		return outcomeFailed
	}
	return outcomeSent
}

// assembleAttachments gathers the per-entity documents plus the generated
// report document when the rule asks for one. Attachment problems degrade to
// a mail without attachments rather than a failed dispatch.
func (d *itemDispatcher) assembleAttachments(
	ctx context.Context,
	rule *notification.Rule,
	item *hosting.Record,
	now time.Time,
) []email.Attachment {
	var atts []email.Attachment

	resolved, err := d.attachments.Resolve(item.ID())
	if err != nil {
		d.logger.Warnw("failed to resolve entity attachments",
			"record_id", item.ID(),
			"error", err,
		)
	}
	for _, f := range resolved {
		atts = append(atts, email.Attachment{
			Filename: f.OriginalName,
			Path:     f.Path,
		})
	}

	if rule.AttachReport() {
		if doc := d.buildReportDocument(ctx, vo.RuleCategoryReport, now); doc != nil {
			atts = append(atts, *doc)
		}
	}

	return atts
}

// buildReportDocument renders a category report as a standalone HTML file.
func (d *itemDispatcher) buildReportDocument(ctx context.Context, category vo.RuleCategory, now time.Time) *email.Attachment {
	md, err := d.reports.Build(ctx, category, now)
	if err != nil {
		d.logger.Warnw("failed to build report content", "category", category, "error", err)
		return nil
	}

	title := reportTitle(category)
	doc, err := d.renderer.RenderDocument(title, md)
	if err != nil {
		d.logger.Warnw("failed to render report document", "category", category, "error", err)
		return nil
	}

	return &email.Attachment{
		Filename: fmt.Sprintf("%s-report-%s.html", category, biztime.FormatInBizTimezone(now, dateLayout)),
		Content:  doc,
	}
}

// deliver sends one message under the per-item timeout and appends the
// ledger row for the outcome. An unconfigured mailer is not a delivery
// attempt: no row is written, so the tuple stays sendable once SMTP is
// configured.
func (d *itemDispatcher) deliver(
	ctx context.Context,
	kind vo.DispatchKind,
	referenceID uint,
	msg email.OutboundEmail,
) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	start := time.Now()
	sendErr := d.mailer.Send(sendCtx, msg)
	metrics.RecordSendDuration(kind.String(), time.Since(start))

	if errors.Is(sendErr, email.ErrMailerNotConfigured) {
		d.logger.Warnw("mailer not configured, send skipped",
			"kind", kind,
			"reference_id", referenceID,
		)
		return sendErr
	}

	var record *notification.DispatchRecord
	var recordErr error
	if sendErr != nil {
		metrics.RecordDispatch(kind.String(), "failed")
		d.logger.Errorw("failed to send notification",
			"kind", kind,
			"reference_id", referenceID,
			"recipient", utils.MaskEmail(msg.To),
			"error", sendErr,
		)
		record, recordErr = notification.NewFailedRecord(kind, referenceID, msg.To, msg.Subject, sendErr)
	} else {
		metrics.RecordDispatch(kind.String(), "sent")
		d.logger.Infow("notification sent",
			"kind", kind,
			"reference_id", referenceID,
			"recipient", utils.MaskEmail(msg.To),
		)
		record, recordErr = notification.NewSentRecord(kind, referenceID, msg.To, msg.Subject)
	}

	if recordErr != nil {
		d.logger.Errorw("failed to build dispatch record", "error", recordErr)
		return sendErr
	}
	if err := d.ledger.Append(ctx, record); err != nil {
		d.logger.Errorw("failed to append dispatch record",
			"kind", kind,
			"reference_id", referenceID,
			"error", err,
		)
	}

	return sendErr
}
