package valueobjects

import "fmt"

// RuleClass separates expiry-driven rules from clock-driven recurring rules.
type RuleClass string

const (
	RuleClassExpiry    RuleClass = "expiry"
	RuleClassRecurring RuleClass = "recurring"
)

var validRuleClasses = map[RuleClass]bool{
	RuleClassExpiry:    true,
	RuleClassRecurring: true,
}

func (c RuleClass) String() string {
	return string(c)
}

func (c RuleClass) IsValid() bool {
	return validRuleClasses[c]
}

func (c RuleClass) IsExpiry() bool {
	return c == RuleClassExpiry
}

func (c RuleClass) IsRecurring() bool {
	return c == RuleClassRecurring
}

func NewRuleClass(s string) (RuleClass, error) {
	c := RuleClass(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid rule class: %s", s)
	}
	return c, nil
}
