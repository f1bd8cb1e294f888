package usecases

import (
	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

// Built-in message used when an expiry rule has no template, or when its
// referenced template is missing or disabled.
const (
	defaultExpirySubject = "Hosting for {{domain}} expires on {{expiryDate}}"
	defaultExpiryBody    = `{{logo}}
<p>Dear {{clientName}},</p>
<p>The hosting plan <strong>{{plan}}</strong> for <strong>{{domain}}</strong>
expires on <strong>{{expiryDate}}</strong> ({{daysLeft}} days from today).</p>
<p>Please renew in time to avoid service interruption.</p>
<p>{{companyName}}<br>{{panelUrl}}</p>`
)

// Built-in wrapper for recurring report mail without a template.
const (
	defaultReportSubject = "{{companyName}} {{reportTitle}} - {{today}}"
	defaultReportBody    = `{{logo}}
<p>{{reportTitle}} generated on {{today}}.</p>
{{report}}
<p>{{companyName}}<br>{{panelUrl}}</p>`
)

// renderExpiryMessage renders an item message through the rule's template,
// falling back to the built-in default.
func renderExpiryMessage(template *notification.MessageTemplate, vars map[string]string) (subject, body string) {
	if template != nil {
		return template.Render(vars)
	}
	return notification.RenderString(defaultExpirySubject, vars),
		notification.RenderString(defaultExpiryBody, vars)
}

// renderReportMessage renders a recurring report message through the rule's
// template, falling back to the built-in report wrapper.
func renderReportMessage(template *notification.MessageTemplate, vars map[string]string) (subject, body string) {
	if template != nil {
		return template.Render(vars)
	}
	return notification.RenderString(defaultReportSubject, vars),
		notification.RenderString(defaultReportBody, vars)
}

// reportTitle names the report of a recurring rule category.
func reportTitle(category vo.RuleCategory) string {
	switch category {
	case vo.RuleCategoryReport:
		return "Expiring Hosting Report"
	case vo.RuleCategorySystem:
		return "System Status Report"
	case vo.RuleCategoryService:
		return "Service Plan Report"
	case vo.RuleCategorySales:
		return "Sales Report"
	default:
		return "Report"
	}
}
