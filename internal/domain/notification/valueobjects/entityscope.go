package valueobjects

import "fmt"

// EntityScope names the record type an expiry rule watches. Hosting records
// are the only scope today; the type keeps the seam open for further
// expiry-dated record types (domains, certificates).
type EntityScope string

const (
	EntityScopeHosting EntityScope = "hosting"
)

var validEntityScopes = map[EntityScope]bool{
	EntityScopeHosting: true,
}

func (s EntityScope) String() string {
	return string(s)
}

func (s EntityScope) IsValid() bool {
	return validEntityScopes[s]
}

func (s EntityScope) IsHosting() bool {
	return s == EntityScopeHosting
}

func NewEntityScope(s string) (EntityScope, error) {
	scope := EntityScope(s)
	if !scope.IsValid() {
		return "", fmt.Errorf("invalid entity scope: %s", s)
	}
	return scope, nil
}
