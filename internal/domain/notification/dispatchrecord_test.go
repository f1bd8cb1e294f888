package notification

import (
	"errors"
	"testing"

	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

func TestNewDispatchRecord(t *testing.T) {
	tests := []struct {
		name        string
		kind        vo.DispatchKind
		referenceID uint
		recipient   string
		status      vo.DispatchStatus
		wantErr     bool
	}{
		{"valid mail record", vo.DispatchKindMail, 42, "client@example.com", vo.DispatchStatusSent, false},
		{"valid report record", vo.DispatchKindReport, 7, "admin@example.com", vo.DispatchStatusFailed, false},
		{"unknown kind", vo.DispatchKind("sms"), 42, "client@example.com", vo.DispatchStatusSent, true},
		{"zero reference", vo.DispatchKindMail, 0, "client@example.com", vo.DispatchStatusSent, true},
		{"empty recipient", vo.DispatchKindMail, 42, "", vo.DispatchStatusSent, true},
		{"unknown status", vo.DispatchKindMail, 42, "client@example.com", vo.DispatchStatus("queued"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDispatchRecord(tt.kind, tt.referenceID, tt.recipient, "subject", tt.status, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDispatchRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFailedRecordCarriesDetail(t *testing.T) {
	rec, err := NewFailedRecord(vo.DispatchKindMail, 42, "client@example.com", "notice", errors.New("connection refused"))
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Status().IsFailed() {
		t.Errorf("status = %v", rec.Status())
	}
	if rec.Detail() != "connection refused" {
		t.Errorf("detail = %q", rec.Detail())
	}
}

func TestSentRecordHasNoDetail(t *testing.T) {
	rec, err := NewSentRecord(vo.DispatchKindReport, 7, "admin@example.com", "weekly report")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Status().IsSent() || rec.Detail() != "" {
		t.Errorf("status = %v, detail = %q", rec.Status(), rec.Detail())
	}
}
