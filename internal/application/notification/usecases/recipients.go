package usecases

import (
	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

// resolveItemRecipients resolves the To and Cc addresses for one expiry item.
// To is the first To-spec that resolves; Cc keeps every resolving Cc-spec,
// de-duplicated against To and each other. When the template yields no To the
// rule's fallback applies: a custom literal, or the item's client primary
// contact. An empty To return means the item has no reachable recipient and
// must be skipped without a ledger row.
func resolveItemRecipients(
	template *notification.MessageTemplate,
	fallback vo.FallbackRecipient,
	contacts vo.ContactContext,
) (to string, cc []string) {
	if template != nil {
		for _, spec := range template.ToSpecs() {
			if addr := spec.Resolve(contacts); addr != "" {
				to = addr
				break
			}
		}
	}

	if to == "" {
		to = resolveFallback(fallback, contacts.ClientPrimary)
	}
	if to == "" {
		return "", nil
	}

	if template != nil {
		seen := map[string]bool{to: true}
		for _, spec := range template.CcSpecs() {
			addr := spec.Resolve(contacts)
			if addr == "" || seen[addr] {
				continue
			}
			seen[addr] = true
			cc = append(cc, addr)
		}
	}

	return to, cc
}

// resolveRuleRecipient resolves the single recipient of a recurring rule:
// the custom fallback address, or the panel admin address when the rule
// falls back to the primary contact.
func resolveRuleRecipient(fallback vo.FallbackRecipient, adminEmail string) string {
	return resolveFallback(fallback, adminEmail)
}

func resolveFallback(fallback vo.FallbackRecipient, primaryContact string) string {
	switch {
	case fallback.IsCustom():
		return fallback.Address()
	case fallback.IsPrimaryContact():
		return primaryContact
	default:
		return ""
	}
}
