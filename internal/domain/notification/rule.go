package notification

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

// Rule is a notification rule: either an expiry rule that watches dated
// records through a schedule of day offsets, or a recurring rule that fires
// on a cadence and sends a category report.
type Rule struct {
	id             uint
	name           string
	class          vo.RuleClass
	entityScope    vo.EntityScope
	schedule       vo.OffsetSchedule
	cadence        vo.Cadence
	category       vo.RuleCategory
	templateID     *uint
	fallback       vo.FallbackRecipient
	attachReport   bool
	enabled        bool
	lastDispatchAt *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	mu             sync.RWMutex
}

// NewExpiryRule builds an enabled expiry rule. The schedule must carry at
// least one offset: an enabled expiry rule with nothing to evaluate is a
// configuration error, not a silent no-op.
func NewExpiryRule(
	name string,
	scope vo.EntityScope,
	schedule vo.OffsetSchedule,
	templateID *uint,
	fallback vo.FallbackRecipient,
) (*Rule, error) {
	if err := validateRuleName(name); err != nil {
		return nil, err
	}
	if !scope.IsValid() {
		return nil, fmt.Errorf("invalid entity scope: %s", scope)
	}
	if schedule.IsEmpty() {
		return nil, fmt.Errorf("expiry rule requires at least one day offset")
	}
	if fallback.IsZero() {
		return nil, fmt.Errorf("fallback recipient is required")
	}

	now := time.Now().UTC()
	return &Rule{
		name:        name,
		class:       vo.RuleClassExpiry,
		entityScope: scope,
		schedule:    schedule,
		templateID:  templateID,
		fallback:    fallback,
		enabled:     true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewRecurringRule builds an enabled recurring rule firing on cadence with
// the given report category.
func NewRecurringRule(
	name string,
	cadence vo.Cadence,
	category vo.RuleCategory,
	templateID *uint,
	fallback vo.FallbackRecipient,
) (*Rule, error) {
	if err := validateRuleName(name); err != nil {
		return nil, err
	}
	if cadence.IsZero() {
		return nil, fmt.Errorf("recurring rule requires a cadence")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid rule category: %s", category)
	}
	if fallback.IsZero() {
		return nil, fmt.Errorf("fallback recipient is required")
	}

	now := time.Now().UTC()
	return &Rule{
		name:       name,
		class:      vo.RuleClassRecurring,
		cadence:    cadence,
		category:   category,
		templateID: templateID,
		fallback:   fallback,
		enabled:    true,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructRule rebuilds a rule from the persistence layer.
func ReconstructRule(
	id uint,
	name string,
	class vo.RuleClass,
	entityScope vo.EntityScope,
	schedule vo.OffsetSchedule,
	cadence vo.Cadence,
	category vo.RuleCategory,
	templateID *uint,
	fallback vo.FallbackRecipient,
	attachReport bool,
	enabled bool,
	lastDispatchAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Rule, error) {
	if id == 0 {
		return nil, fmt.Errorf("rule ID cannot be zero")
	}
	if err := validateRuleName(name); err != nil {
		return nil, err
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("invalid rule class: %s", class)
	}

	return &Rule{
		id:             id,
		name:           name,
		class:          class,
		entityScope:    entityScope,
		schedule:       schedule,
		cadence:        cadence,
		category:       category,
		templateID:     templateID,
		fallback:       fallback,
		attachReport:   attachReport,
		enabled:        enabled,
		lastDispatchAt: lastDispatchAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func validateRuleName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("rule name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("rule name exceeds maximum length of 100 characters")
	}
	return nil
}

func (r *Rule) ID() uint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

func (r *Rule) Name() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.name
}

func (r *Rule) Class() vo.RuleClass {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.class
}

func (r *Rule) EntityScope() vo.EntityScope {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entityScope
}

func (r *Rule) Schedule() vo.OffsetSchedule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schedule
}

func (r *Rule) Cadence() vo.Cadence {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cadence
}

func (r *Rule) Category() vo.RuleCategory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.category
}

func (r *Rule) TemplateID() *uint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templateID
}

func (r *Rule) Fallback() vo.FallbackRecipient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

func (r *Rule) AttachReport() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.attachReport
}

func (r *Rule) IsEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled
}

func (r *Rule) LastDispatchAt() *time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastDispatchAt
}

func (r *Rule) Version() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *Rule) CreatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.createdAt
}

func (r *Rule) UpdatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updatedAt
}

// SetID assigns the persistence identity once.
func (r *Rule) SetID(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.id != 0 {
		return fmt.Errorf("rule ID already set")
	}
	r.id = id
	return nil
}

// SetAttachReport toggles the generated report attachment on expiry mail.
func (r *Rule) SetAttachReport(attach bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachReport = attach
	r.touch()
}

// Enable turns the rule back on. An expiry rule with an empty schedule
// cannot be enabled.
func (r *Rule) Enable() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.class.IsExpiry() && r.schedule.IsEmpty() {
		return fmt.Errorf("cannot enable expiry rule without offsets")
	}
	if r.enabled {
		return nil
	}
	r.enabled = true
	r.touch()
	return nil
}

func (r *Rule) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enabled {
		return
	}
	r.enabled = false
	r.touch()
}

// MarkDispatched records a successful recurring dispatch. Only the
// dispatcher calls this, and only after the transport accepted the message.
func (r *Rule) MarkDispatched(at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	utc := at.UTC()
	r.lastDispatchAt = &utc
	r.touch()
}

// DueAt reports whether a recurring rule's cadence fires at now. Expiry
// rules are never clock-due.
func (r *Rule) DueAt(now time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.class.IsRecurring() || r.cadence.IsZero() {
		return false
	}
	return r.cadence.DueAt(now, r.lastDispatchAt)
}

func (r *Rule) touch() {
	r.version++
	r.updatedAt = time.Now().UTC()
}
