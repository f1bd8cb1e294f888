// Package hosting models the sold hosting records the notification engine
// watches. Records are read-only snapshots here: their lifecycle (sales,
// renewals, suspension) is managed elsewhere in the panel.
package hosting

import (
	"fmt"
	"time"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

// Status is the lifecycle state of a hosting record.
type Status string

const (
	StatusActive     Status = "active"
	StatusSuspended  Status = "suspended"
	StatusTerminated Status = "terminated"
)

var validStatuses = map[Status]bool{
	StatusActive:     true,
	StatusSuspended:  true,
	StatusTerminated: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid hosting status: %s", s)
	}
	return status, nil
}

// Contacts carries the addresses reachable for one record. Any of them may
// be empty; recipient resolution skips absent contacts.
type Contacts struct {
	ClientEmail      string
	ClientTechEmail  string
	DomainOwnerEmail string
	DomainTechEmail  string
}

// ContactContext adapts the record's contacts to recipient resolution.
func (c Contacts) ContactContext() vo.ContactContext {
	return vo.ContactContext{
		ClientPrimary: c.ClientEmail,
		ClientTech:    c.ClientTechEmail,
		DomainOwner:   c.DomainOwnerEmail,
		DomainTech:    c.DomainTechEmail,
	}
}

// Record is an immutable snapshot of one sold hosting record joined with its
// client's contact data. Snapshots come out of the repository; nothing in
// the notification engine mutates or persists them.
type Record struct {
	id            uint
	domainName    string
	planName      string
	status        Status
	clientID      uint
	clientName    string
	clientCompany string
	contacts      Contacts
	expiresAt     time.Time
	createdAt     time.Time
}

// ReconstructRecord rebuilds a snapshot from the persistence layer.
func ReconstructRecord(
	id uint,
	domainName string,
	planName string,
	status Status,
	clientID uint,
	clientName string,
	clientCompany string,
	contacts Contacts,
	expiresAt time.Time,
	createdAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("hosting record ID cannot be zero")
	}
	if domainName == "" {
		return nil, fmt.Errorf("domain name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid hosting status: %s", status)
	}
	if expiresAt.IsZero() {
		return nil, fmt.Errorf("expiry date is required")
	}

	return &Record{
		id:            id,
		domainName:    domainName,
		planName:      planName,
		status:        status,
		clientID:      clientID,
		clientName:    clientName,
		clientCompany: clientCompany,
		contacts:      contacts,
		expiresAt:     expiresAt.UTC(),
		createdAt:     createdAt.UTC(),
	}, nil
}

func (r *Record) ID() uint              { return r.id }
func (r *Record) DomainName() string    { return r.domainName }
func (r *Record) PlanName() string      { return r.planName }
func (r *Record) Status() Status        { return r.status }
func (r *Record) ClientID() uint        { return r.clientID }
func (r *Record) ClientName() string    { return r.clientName }
func (r *Record) ClientCompany() string { return r.clientCompany }
func (r *Record) Contacts() Contacts    { return r.contacts }
func (r *Record) ExpiresAt() time.Time  { return r.expiresAt }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }

// DaysUntilExpiry returns whole days between now and the expiry date, both
// truncated to UTC day boundaries. Negative values mean the record is past
// due.
func (r *Record) DaysUntilExpiry(now time.Time) int {
	nowDay := now.UTC().Truncate(24 * time.Hour)
	expDay := r.expiresAt.Truncate(24 * time.Hour)
	return int(expDay.Sub(nowDay) / (24 * time.Hour))
}
