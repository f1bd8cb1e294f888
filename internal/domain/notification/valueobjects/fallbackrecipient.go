package valueobjects

import (
	"fmt"
	"strings"
)

// FallbackMode selects where a rule sends when its template resolves no
// primary recipient (or when a recurring rule has no per-record contacts).
type FallbackMode string

const (
	// FallbackModeCustom sends to a fixed address configured on the rule.
	FallbackModeCustom FallbackMode = "custom"
	// FallbackModePrimaryContact sends to the record's client primary
	// contact; for recurring rules it means the panel admin address.
	FallbackModePrimaryContact FallbackMode = "primaryContact"
)

func (m FallbackMode) IsValid() bool {
	return m == FallbackModeCustom || m == FallbackModePrimaryContact
}

func (m FallbackMode) String() string {
	return string(m)
}

// FallbackRecipient is a rule's recipient of last resort.
type FallbackRecipient struct {
	mode    FallbackMode
	address string
}

func NewFallbackRecipient(mode FallbackMode, address string) (FallbackRecipient, error) {
	switch mode {
	case FallbackModeCustom:
		return NewCustomFallback(address)
	case FallbackModePrimaryContact:
		return NewPrimaryContactFallback(), nil
	default:
		return FallbackRecipient{}, fmt.Errorf("invalid fallback mode: %s", mode)
	}
}

func NewCustomFallback(address string) (FallbackRecipient, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return FallbackRecipient{}, fmt.Errorf("custom fallback address is required")
	}
	if !strings.Contains(address, "@") {
		return FallbackRecipient{}, fmt.Errorf("invalid fallback address: %s", address)
	}
	return FallbackRecipient{mode: FallbackModeCustom, address: address}, nil
}

func NewPrimaryContactFallback() FallbackRecipient {
	return FallbackRecipient{mode: FallbackModePrimaryContact}
}

func (f FallbackRecipient) Mode() FallbackMode { return f.mode }
func (f FallbackRecipient) Address() string    { return f.address }

func (f FallbackRecipient) IsCustom() bool {
	return f.mode == FallbackModeCustom
}

func (f FallbackRecipient) IsPrimaryContact() bool {
	return f.mode == FallbackModePrimaryContact
}

func (f FallbackRecipient) IsZero() bool {
	return f == FallbackRecipient{}
}
