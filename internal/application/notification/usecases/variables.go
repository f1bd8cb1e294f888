package usecases

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"time"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/biztime"
)

const dateLayout = "2006-01-02"

// baseVariables builds the substitution variables every message carries,
// sourced from the hot-reloadable settings.
func baseVariables(ctx context.Context, settings setting.Provider, now time.Time) map[string]string {
	vars := map[string]string{
		"today": biztime.FormatInBizTimezone(now, dateLayout),
	}

	companyName := settings.GetCompanyName(ctx)
	vars["companyName"] = companyName
	vars["adminEmail"] = settings.GetAdminEmail(ctx)

	if baseURL, ok := settings.GetPanelBaseURL(ctx).Value.(string); ok {
		vars["panelUrl"] = baseURL
	}

	// logo is on the HTML passthrough whitelist, so the tag is built here
	// with the URL and alt text escaped.
	if logoURL := settings.GetLogoURL(ctx); logoURL != "" {
		vars["logo"] = fmt.Sprintf(
			`<img src="%s" alt="%s" style="max-height:48px">`,
			html.EscapeString(logoURL),
			html.EscapeString(companyName),
		)
	} else {
		vars["logo"] = ""
	}

	return vars
}

// recordVariables adds the per-record variables of one hosting snapshot.
func recordVariables(vars map[string]string, record *hosting.Record, now time.Time) map[string]string {
	vars["clientName"] = record.ClientName()
	vars["clientCompany"] = record.ClientCompany()
	vars["domain"] = record.DomainName()
	vars["plan"] = record.PlanName()
	vars["expiryDate"] = biztime.FormatInBizTimezone(record.ExpiresAt(), dateLayout)
	vars["daysLeft"] = strconv.Itoa(record.DaysUntilExpiry(now))
	return vars
}
