package valueobjects

import "fmt"

// RuleCategory selects the report content a recurring rule sends.
type RuleCategory string

const (
	RuleCategoryReport  RuleCategory = "report"
	RuleCategorySystem  RuleCategory = "system"
	RuleCategoryService RuleCategory = "service"
	RuleCategorySales   RuleCategory = "sales"
)

var validRuleCategories = map[RuleCategory]bool{
	RuleCategoryReport:  true,
	RuleCategorySystem:  true,
	RuleCategoryService: true,
	RuleCategorySales:   true,
}

func (c RuleCategory) String() string {
	return string(c)
}

func (c RuleCategory) IsValid() bool {
	return validRuleCategories[c]
}

func (c RuleCategory) IsReport() bool {
	return c == RuleCategoryReport
}

func (c RuleCategory) IsSystem() bool {
	return c == RuleCategorySystem
}

func (c RuleCategory) IsService() bool {
	return c == RuleCategoryService
}

func (c RuleCategory) IsSales() bool {
	return c == RuleCategorySales
}

func NewRuleCategory(s string) (RuleCategory, error) {
	c := RuleCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid rule category: %s", s)
	}
	return c, nil
}
