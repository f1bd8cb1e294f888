package valueobjects

import "testing"

func TestNewRecipientSpec(t *testing.T) {
	tests := []struct {
		name    string
		kind    RecipientKind
		value   string
		wantErr bool
	}{
		{"literal address", RecipientKindLiteral, "ops@example.com", false},
		{"literal without at sign", RecipientKindLiteral, "not-an-address", true},
		{"literal empty", RecipientKindLiteral, "  ", true},
		{"known variable", RecipientKindVariable, ContactClientPrimary, false},
		{"unknown variable", RecipientKindVariable, "ownerEmail", true},
		{"unknown kind", RecipientKind("group"), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecipientSpec(tt.kind, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRecipientSpec() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecipientSpecResolve(t *testing.T) {
	contacts := ContactContext{
		ClientPrimary: "client@example.com",
		ClientTech:    "tech@example.com",
		DomainOwner:   "owner@example.org",
	}

	tests := []struct {
		name string
		spec func() (RecipientSpec, error)
		want string
	}{
		{
			name: "literal resolves verbatim",
			spec: func() (RecipientSpec, error) { return NewLiteralRecipient("fixed@example.com") },
			want: "fixed@example.com",
		},
		{
			name: "client primary variable",
			spec: func() (RecipientSpec, error) { return NewVariableRecipient(ContactClientPrimary) },
			want: "client@example.com",
		},
		{
			name: "client tech variable",
			spec: func() (RecipientSpec, error) { return NewVariableRecipient(ContactClientTech) },
			want: "tech@example.com",
		},
		{
			name: "domain owner variable",
			spec: func() (RecipientSpec, error) { return NewVariableRecipient(ContactDomainOwner) },
			want: "owner@example.org",
		},
		{
			name: "absent contact resolves empty",
			spec: func() (RecipientSpec, error) { return NewVariableRecipient(ContactDomainTech) },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.spec()
			if err != nil {
				t.Fatal(err)
			}
			if got := spec.Resolve(contacts); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackRecipient(t *testing.T) {
	t.Run("custom requires address", func(t *testing.T) {
		if _, err := NewCustomFallback(""); err == nil {
			t.Error("expected error for empty custom address")
		}
		f, err := NewCustomFallback("admin@example.com")
		if err != nil {
			t.Fatal(err)
		}
		if !f.IsCustom() || f.Address() != "admin@example.com" {
			t.Errorf("unexpected fallback: %+v", f)
		}
	})

	t.Run("primary contact carries no address", func(t *testing.T) {
		f := NewPrimaryContactFallback()
		if !f.IsPrimaryContact() || f.Address() != "" {
			t.Errorf("unexpected fallback: %+v", f)
		}
	})

	t.Run("mode dispatch", func(t *testing.T) {
		if _, err := NewFallbackRecipient(FallbackModeCustom, "a@b.c"); err != nil {
			t.Errorf("custom: %v", err)
		}
		if _, err := NewFallbackRecipient(FallbackModePrimaryContact, ""); err != nil {
			t.Errorf("primaryContact: %v", err)
		}
		if _, err := NewFallbackRecipient(FallbackMode("none"), ""); err == nil {
			t.Error("expected error for unknown mode")
		}
	})
}
