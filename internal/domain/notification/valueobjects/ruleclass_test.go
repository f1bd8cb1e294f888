package valueobjects

import "testing"

func TestNewRuleClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RuleClass
		wantErr bool
	}{
		{"expiry", "expiry", RuleClassExpiry, false},
		{"recurring", "recurring", RuleClassRecurring, false},
		{"unknown", "interval", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRuleClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRuleClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewRuleClass(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRuleClassPredicates(t *testing.T) {
	if !RuleClassExpiry.IsExpiry() || RuleClassExpiry.IsRecurring() {
		t.Error("expiry predicates wrong")
	}
	if !RuleClassRecurring.IsRecurring() || RuleClassRecurring.IsExpiry() {
		t.Error("recurring predicates wrong")
	}
}
