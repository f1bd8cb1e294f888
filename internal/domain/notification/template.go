package notification

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"
	"time"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

// htmlSafeKeys are substitution keys whose values are pre-built HTML and
// are inserted verbatim. Every other value is HTML-escaped before
// substitution.
var htmlSafeKeys = map[string]bool{
	"report": true,
	"logo":   true,
}

// MessageTemplate is an operator-authored mail template: subject and HTML
// body with {{key}} placeholders, plus the recipient specs resolved per
// record at dispatch time.
type MessageTemplate struct {
	id        uint
	name      string
	subject   string
	body      string
	toSpecs   []vo.RecipientSpec
	ccSpecs   []vo.RecipientSpec
	enabled   bool
	version   int
	createdAt time.Time
	updatedAt time.Time
	mu        sync.RWMutex
}

func NewMessageTemplate(
	name string,
	subject string,
	body string,
	toSpecs []vo.RecipientSpec,
	ccSpecs []vo.RecipientSpec,
) (*MessageTemplate, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("template name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("template name exceeds maximum length of 100 characters")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 255 {
		return nil, fmt.Errorf("subject exceeds maximum length of 255 characters")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}

	now := time.Now().UTC()
	return &MessageTemplate{
		name:      name,
		subject:   subject,
		body:      body,
		toSpecs:   toSpecs,
		ccSpecs:   ccSpecs,
		enabled:   true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMessageTemplate rebuilds a template from the persistence layer.
func ReconstructMessageTemplate(
	id uint,
	name string,
	subject string,
	body string,
	toSpecs []vo.RecipientSpec,
	ccSpecs []vo.RecipientSpec,
	enabled bool,
	version int,
	createdAt, updatedAt time.Time,
) (*MessageTemplate, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("template name is required")
	}

	return &MessageTemplate{
		id:        id,
		name:      name,
		subject:   subject,
		body:      body,
		toSpecs:   toSpecs,
		ccSpecs:   ccSpecs,
		enabled:   enabled,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *MessageTemplate) ID() uint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.id
}

func (t *MessageTemplate) Name() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}

func (t *MessageTemplate) Subject() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.subject
}

func (t *MessageTemplate) Body() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.body
}

func (t *MessageTemplate) ToSpecs() []vo.RecipientSpec {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]vo.RecipientSpec, len(t.toSpecs))
	copy(out, t.toSpecs)
	return out
}

func (t *MessageTemplate) CcSpecs() []vo.RecipientSpec {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]vo.RecipientSpec, len(t.ccSpecs))
	copy(out, t.ccSpecs)
	return out
}

func (t *MessageTemplate) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

func (t *MessageTemplate) Version() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

func (t *MessageTemplate) CreatedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.createdAt
}

func (t *MessageTemplate) UpdatedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.updatedAt
}

// SetID assigns the persistence identity once.
func (t *MessageTemplate) SetID(id uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.id != 0 {
		return fmt.Errorf("template ID already set")
	}
	t.id = id
	return nil
}

// Render substitutes vars into the subject and body. Placeholders without a
// matching key survive untouched, which keeps rendering idempotent and makes
// template typos visible in the delivered mail instead of silently
// disappearing.
func (t *MessageTemplate) Render(vars map[string]string) (subject, body string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return RenderString(t.subject, vars), RenderString(t.body, vars)
}

// RenderString applies the {{key}} substitution rules to any string: values
// for keys outside the HTML whitelist are escaped, whitelist values pass
// through verbatim. Keys are applied in sorted order so rendering is
// deterministic.
func RenderString(s string, vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := vars[k]
		if !htmlSafeKeys[k] {
			v = html.EscapeString(v)
		}
		s = strings.ReplaceAll(s, "{{"+k+"}}", v)
	}
	return s
}
