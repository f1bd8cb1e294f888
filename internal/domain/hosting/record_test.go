package hosting

import (
	"testing"
	"time"
)

func validRecord(t *testing.T, expiresAt time.Time) *Record {
	t.Helper()
	rec, err := ReconstructRecord(
		42, "example.com", "Business 10G", StatusActive,
		7, "Acme Corp", "Acme Corporation",
		Contacts{ClientEmail: "client@example.com", ClientTechEmail: "tech@example.com"},
		expiresAt, expiresAt.AddDate(-1, 0, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestReconstructRecordValidation(t *testing.T) {
	exp := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func() (*Record, error)
		wantErr bool
	}{
		{
			name: "valid",
			mutate: func() (*Record, error) {
				return ReconstructRecord(1, "example.com", "p", StatusActive, 1, "c", "", Contacts{}, exp, exp)
			},
		},
		{
			name: "zero id",
			mutate: func() (*Record, error) {
				return ReconstructRecord(0, "example.com", "p", StatusActive, 1, "c", "", Contacts{}, exp, exp)
			},
			wantErr: true,
		},
		{
			name: "empty domain",
			mutate: func() (*Record, error) {
				return ReconstructRecord(1, "", "p", StatusActive, 1, "c", "", Contacts{}, exp, exp)
			},
			wantErr: true,
		},
		{
			name: "bad status",
			mutate: func() (*Record, error) {
				return ReconstructRecord(1, "example.com", "p", Status("archived"), 1, "c", "", Contacts{}, exp, exp)
			},
			wantErr: true,
		},
		{
			name: "zero expiry",
			mutate: func() (*Record, error) {
				return ReconstructRecord(1, "example.com", "p", StatusActive, 1, "c", "", Contacts{}, time.Time{}, exp)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mutate()
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	tests := []struct {
		name    string
		expires string
		now     string
		want    int
	}{
		{"a week out", "2024-06-08", "2024-06-01", 7},
		{"same day", "2024-06-01", "2024-06-01", 0},
		{"expired three days ago", "2024-05-29", "2024-06-01", -3},
		{"partial day still counts as full day", "2024-06-08", "2024-06-01", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := time.Parse("2006-01-02", tt.expires)
			if err != nil {
				t.Fatal(err)
			}
			now, err := time.Parse("2006-01-02", tt.now)
			if err != nil {
				t.Fatal(err)
			}
			if tt.name == "partial day still counts as full day" {
				now = now.Add(17 * time.Hour)
			}

			rec := validRecord(t, exp)
			if got := rec.DaysUntilExpiry(now); got != tt.want {
				t.Errorf("DaysUntilExpiry() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContactContext(t *testing.T) {
	c := Contacts{
		ClientEmail:      "client@example.com",
		DomainOwnerEmail: "owner@example.org",
	}
	ctx := c.ContactContext()
	if ctx.ClientPrimary != "client@example.com" {
		t.Errorf("ClientPrimary = %q", ctx.ClientPrimary)
	}
	if ctx.DomainOwner != "owner@example.org" {
		t.Errorf("DomainOwner = %q", ctx.DomainOwner)
	}
	if ctx.ClientTech != "" || ctx.DomainTech != "" {
		t.Error("absent contacts must stay empty")
	}
}
