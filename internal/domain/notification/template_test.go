package notification

import (
	"strings"
	"testing"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

func newTestTemplate(t *testing.T, subject, body string) *MessageTemplate {
	t.Helper()
	to, err := vo.NewVariableRecipient(vo.ContactClientPrimary)
	if err != nil {
		t.Fatal(err)
	}
	tpl, err := NewMessageTemplate("expiry notice", subject, body, []vo.RecipientSpec{to}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tpl
}

func TestNewMessageTemplateValidation(t *testing.T) {
	tests := []struct {
		name     string
		tplName  string
		subject  string
		body     string
		wantErr  bool
	}{
		{"valid", "notice", "subject", "body", false},
		{"empty name", "", "subject", "body", true},
		{"name too long", strings.Repeat("x", 101), "subject", "body", true},
		{"empty subject", "notice", "", "body", true},
		{"subject too long", "notice", strings.Repeat("s", 256), "body", true},
		{"empty body", "notice", "subject", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMessageTemplate(tt.tplName, tt.subject, tt.body, nil, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMessageTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderSubstitutesAllOccurrences(t *testing.T) {
	tpl := newTestTemplate(t,
		"{{domain}} expires in {{daysLeft}} days",
		"<p>Hello {{clientName}}, {{domain}} ({{domain}}) expires on {{expiryDate}}.</p>",
	)

	subject, body := tpl.Render(map[string]string{
		"domain":     "example.com",
		"daysLeft":   "7",
		"clientName": "Acme Corp",
		"expiryDate": "2024-06-08",
	})

	if subject != "example.com expires in 7 days" {
		t.Errorf("subject = %q", subject)
	}
	if strings.Count(body, "example.com") != 2 {
		t.Errorf("body should substitute every occurrence: %q", body)
	}
	if !strings.Contains(body, "Acme Corp") {
		t.Errorf("body missing client name: %q", body)
	}
}

func TestRenderEscapesValues(t *testing.T) {
	tpl := newTestTemplate(t, "notice for {{clientName}}", "<p>{{clientName}}</p>")

	subject, body := tpl.Render(map[string]string{
		"clientName": `Müller & Sons <script>"quotes"`,
	})

	for _, out := range []string{subject, body} {
		if strings.Contains(out, "<script>") {
			t.Errorf("raw markup leaked into output: %q", out)
		}
		if !strings.Contains(out, "&amp;") || !strings.Contains(out, "&lt;script&gt;") {
			t.Errorf("value not HTML-escaped: %q", out)
		}
	}
}

func TestRenderWhitelistedKeysPassVerbatim(t *testing.T) {
	tpl := newTestTemplate(t, "weekly report", "<div>{{report}}</div><header>{{logo}}</header>")

	_, body := tpl.Render(map[string]string{
		"report": "<table><tr><td>example.com</td></tr></table>",
		"logo":   `<img src="https://panel.example/logo.png">`,
	})

	if !strings.Contains(body, "<table>") {
		t.Errorf("report fragment was escaped: %q", body)
	}
	if !strings.Contains(body, `<img src="https://panel.example/logo.png">`) {
		t.Errorf("logo markup was escaped: %q", body)
	}
}

func TestRenderUnmatchedPlaceholdersSurvive(t *testing.T) {
	tpl := newTestTemplate(t, "{{domain}} and {{unknownKey}}", "{{another}}")

	subject, body := tpl.Render(map[string]string{"domain": "example.com"})

	if !strings.Contains(subject, "{{unknownKey}}") {
		t.Errorf("unmatched placeholder dropped from subject: %q", subject)
	}
	if body != "{{another}}" {
		t.Errorf("unmatched placeholder dropped from body: %q", body)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	vars := map[string]string{"domain": "example.com"}

	once := RenderString("{{domain}} / {{missing}}", vars)
	twice := RenderString(once, vars)

	if once != twice {
		t.Errorf("render not idempotent: %q vs %q", once, twice)
	}
}

func TestRenderEmptyVars(t *testing.T) {
	got := RenderString("{{domain}} stays", nil)
	if got != "{{domain}} stays" {
		t.Errorf("RenderString with nil vars = %q", got)
	}
}
