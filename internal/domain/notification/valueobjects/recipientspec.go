package valueobjects

import (
	"fmt"
	"strings"
)

// RecipientKind distinguishes fixed addresses from contact variables.
type RecipientKind string

const (
	RecipientKindLiteral  RecipientKind = "literal"
	RecipientKindVariable RecipientKind = "variable"
)

func (k RecipientKind) IsValid() bool {
	return k == RecipientKindLiteral || k == RecipientKindVariable
}

func (k RecipientKind) String() string {
	return string(k)
}

// Contact variables a recipient spec may reference. They resolve against the
// contact set of the record being notified about.
const (
	ContactClientPrimary = "clientPrimaryContact"
	ContactClientTech    = "clientTechContact"
	ContactDomainOwner   = "domainPrimaryContact"
	ContactDomainTech    = "domainTechContact"
)

var validContactVariables = map[string]bool{
	ContactClientPrimary: true,
	ContactClientTech:    true,
	ContactDomainOwner:   true,
	ContactDomainTech:    true,
}

// ContactContext carries the resolvable addresses of one notifiable record.
// Absent contacts are empty strings.
type ContactContext struct {
	ClientPrimary string
	ClientTech    string
	DomainOwner   string
	DomainTech    string
}

// RecipientSpec is one entry of a template's To or Cc list: either a literal
// address used verbatim, or a variable resolved per record.
type RecipientSpec struct {
	kind  RecipientKind
	value string
}

func NewRecipientSpec(kind RecipientKind, value string) (RecipientSpec, error) {
	switch kind {
	case RecipientKindLiteral:
		return NewLiteralRecipient(value)
	case RecipientKindVariable:
		return NewVariableRecipient(value)
	default:
		return RecipientSpec{}, fmt.Errorf("invalid recipient kind: %s", kind)
	}
}

func NewLiteralRecipient(address string) (RecipientSpec, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return RecipientSpec{}, fmt.Errorf("literal recipient address is required")
	}
	if !strings.Contains(address, "@") {
		return RecipientSpec{}, fmt.Errorf("invalid literal recipient address: %s", address)
	}
	return RecipientSpec{kind: RecipientKindLiteral, value: address}, nil
}

func NewVariableRecipient(variable string) (RecipientSpec, error) {
	if !validContactVariables[variable] {
		return RecipientSpec{}, fmt.Errorf("unknown contact variable: %s", variable)
	}
	return RecipientSpec{kind: RecipientKindVariable, value: variable}, nil
}

func (r RecipientSpec) Kind() RecipientKind { return r.kind }
func (r RecipientSpec) Value() string       { return r.value }

func (r RecipientSpec) IsZero() bool {
	return r == RecipientSpec{}
}

// Resolve returns the concrete address for this spec, or "" when a variable
// points at a contact the record does not carry.
func (r RecipientSpec) Resolve(contacts ContactContext) string {
	if r.kind == RecipientKindLiteral {
		return r.value
	}
	switch r.value {
	case ContactClientPrimary:
		return contacts.ClientPrimary
	case ContactClientTech:
		return contacts.ClientTech
	case ContactDomainOwner:
		return contacts.DomainOwner
	case ContactDomainTech:
		return contacts.DomainTech
	default:
		return ""
	}
}
