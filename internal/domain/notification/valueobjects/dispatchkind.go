package valueobjects

import "fmt"

// DispatchKind partitions the dispatch ledger. Expiry item mail is keyed by
// the hosting record it concerns; recurring report mail is keyed by its rule.
type DispatchKind string

const (
	DispatchKindMail   DispatchKind = "mail"
	DispatchKindReport DispatchKind = "report"
)

var validDispatchKinds = map[DispatchKind]bool{
	DispatchKindMail:   true,
	DispatchKindReport: true,
}

func (k DispatchKind) String() string {
	return string(k)
}

func (k DispatchKind) IsValid() bool {
	return validDispatchKinds[k]
}

func (k DispatchKind) IsMail() bool {
	return k == DispatchKindMail
}

func (k DispatchKind) IsReport() bool {
	return k == DispatchKindReport
}

func NewDispatchKind(s string) (DispatchKind, error) {
	k := DispatchKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid dispatch kind: %s", s)
	}
	return k, nil
}
