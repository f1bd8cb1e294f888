package notification

import (
	"fmt"
	"time"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

// DispatchRecord is one row of the dispatch ledger: a delivery attempt for a
// (kind, reference, recipient) tuple with its terminal outcome. Records are
// append-only; the automatic expiry path consults them for suppression, every
// other path writes them purely as audit.
type DispatchRecord struct {
	id          uint
	kind        vo.DispatchKind
	referenceID uint
	recipient   string
	subject     string
	status      vo.DispatchStatus
	detail      string
	createdAt   time.Time
}

func NewDispatchRecord(
	kind vo.DispatchKind,
	referenceID uint,
	recipient string,
	subject string,
	status vo.DispatchStatus,
	detail string,
) (*DispatchRecord, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid dispatch kind: %s", kind)
	}
	if referenceID == 0 {
		return nil, fmt.Errorf("reference ID is required")
	}
	if recipient == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid dispatch status: %s", status)
	}

	return &DispatchRecord{
		kind:        kind,
		referenceID: referenceID,
		recipient:   recipient,
		subject:     subject,
		status:      status,
		detail:      detail,
		createdAt:   time.Now().UTC(),
	}, nil
}

// NewSentRecord is shorthand for a successful delivery row.
func NewSentRecord(kind vo.DispatchKind, referenceID uint, recipient, subject string) (*DispatchRecord, error) {
	return NewDispatchRecord(kind, referenceID, recipient, subject, vo.DispatchStatusSent, "")
}

// NewFailedRecord is shorthand for a failed delivery row carrying the
// transport error.
func NewFailedRecord(kind vo.DispatchKind, referenceID uint, recipient, subject string, sendErr error) (*DispatchRecord, error) {
	detail := ""
	if sendErr != nil {
		detail = sendErr.Error()
	}
	return NewDispatchRecord(kind, referenceID, recipient, subject, vo.DispatchStatusFailed, detail)
}

// ReconstructDispatchRecord rebuilds a ledger row from the persistence layer.
func ReconstructDispatchRecord(
	id uint,
	kind vo.DispatchKind,
	referenceID uint,
	recipient string,
	subject string,
	status vo.DispatchStatus,
	detail string,
	createdAt time.Time,
) (*DispatchRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("dispatch record ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid dispatch kind: %s", kind)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid dispatch status: %s", status)
	}

	return &DispatchRecord{
		id:          id,
		kind:        kind,
		referenceID: referenceID,
		recipient:   recipient,
		subject:     subject,
		status:      status,
		detail:      detail,
		createdAt:   createdAt,
	}, nil
}

func (d *DispatchRecord) ID() uint                  { return d.id }
func (d *DispatchRecord) Kind() vo.DispatchKind     { return d.kind }
func (d *DispatchRecord) ReferenceID() uint         { return d.referenceID }
func (d *DispatchRecord) Recipient() string         { return d.recipient }
func (d *DispatchRecord) Subject() string           { return d.subject }
func (d *DispatchRecord) Status() vo.DispatchStatus { return d.status }
func (d *DispatchRecord) Detail() string            { return d.detail }
func (d *DispatchRecord) CreatedAt() time.Time      { return d.createdAt }

// SetID assigns the persistence identity once.
func (d *DispatchRecord) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("dispatch record ID already set")
	}
	d.id = id
	return nil
}
