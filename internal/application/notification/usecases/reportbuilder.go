package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// ReportBuilder assembles the Markdown content of recurring report mail from
// the hosting snapshots. The dispatcher feeds the result through the
// ReportRenderer for the {{report}} fragment and the document attachment.
type ReportBuilder struct {
	hostingRepo   hosting.RecordRepository
	lookaheadDays int
	logger        logger.Interface
}

func NewReportBuilder(
	hostingRepo hosting.RecordRepository,
	lookaheadDays int,
	logger logger.Interface,
) *ReportBuilder {
	if lookaheadDays <= 0 {
		lookaheadDays = 30
	}
	return &ReportBuilder{
		hostingRepo:   hostingRepo,
		lookaheadDays: lookaheadDays,
		logger:        logger,
	}
}

// Build returns the Markdown body for one report category at the given time.
func (b *ReportBuilder) Build(ctx context.Context, category vo.RuleCategory, now time.Time) (string, error) {
	switch category {
	case vo.RuleCategoryReport:
		return b.buildExpiringOutlook(ctx, now)
	case vo.RuleCategorySystem:
		return b.buildStatusCounts(ctx)
	case vo.RuleCategoryService:
		return b.buildPlanBreakdown(ctx)
	case vo.RuleCategorySales:
		return b.buildSignupCounts(ctx, now)
	default:
		return "", fmt.Errorf("unknown report category: %s", category)
	}
}

// buildExpiringOutlook lists active records expiring in the next N days.
func (b *ReportBuilder) buildExpiringOutlook(ctx context.Context, now time.Time) (string, error) {
	from := now
	to := now.AddDate(0, 0, b.lookaheadDays)

	records, err := b.hostingRepo.FindExpiringBetween(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("failed to load expiring records: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Hosting expiring within %d days\n\n", b.lookaheadDays)

	if len(records) == 0 {
		sb.WriteString("No hosting records expire in this window.\n")
		return sb.String(), nil
	}

	sb.WriteString("| Domain | Client | Plan | Expires | Days left |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range records {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %d |\n",
			r.DomainName(),
			r.ClientName(),
			r.PlanName(),
			biztime.FormatInBizTimezone(r.ExpiresAt(), dateLayout),
			r.DaysUntilExpiry(now),
		)
	}

	return sb.String(), nil
}

// buildStatusCounts summarizes records per lifecycle status.
func (b *ReportBuilder) buildStatusCounts(ctx context.Context) (string, error) {
	counts, err := b.hostingRepo.CountByStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count records by status: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("## Panel status\n\n")
	sb.WriteString("| Status | Records |\n")
	sb.WriteString("|---|---|\n")

	var total int64
	for _, c := range counts {
		fmt.Fprintf(&sb, "| %s | %d |\n", c.Status, c.Total)
		total += c.Total
	}
	fmt.Fprintf(&sb, "\nTotal records: %d\n", total)

	return sb.String(), nil
}

// buildPlanBreakdown summarizes records per hosting plan.
func (b *ReportBuilder) buildPlanBreakdown(ctx context.Context) (string, error) {
	counts, err := b.hostingRepo.CountByPlan(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count records by plan: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("## Plan breakdown\n\n")
	sb.WriteString("| Plan | Total | Active |\n")
	sb.WriteString("|---|---|---|\n")
	for _, c := range counts {
		fmt.Fprintf(&sb, "| %s | %d | %d |\n", c.Plan, c.Total, c.Active)
	}

	return sb.String(), nil
}

// buildSignupCounts counts records provisioned in the trailing window.
// Counts only; billing figures are an external concern.
func (b *ReportBuilder) buildSignupCounts(ctx context.Context, now time.Time) (string, error) {
	from := now.AddDate(0, 0, -b.lookaheadDays)

	count, err := b.hostingRepo.CountCreatedBetween(ctx, from, now)
	if err != nil {
		return "", fmt.Errorf("failed to count new signups: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("## New signups\n\n")
	fmt.Fprintf(&sb, "%d new hosting records in the last %d days (%s to %s).\n",
		count,
		b.lookaheadDays,
		biztime.FormatInBizTimezone(from, dateLayout),
		biztime.FormatInBizTimezone(now, dateLayout),
	)

	return sb.String(), nil
}
