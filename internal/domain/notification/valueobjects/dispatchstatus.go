package valueobjects

import "fmt"

// DispatchStatus is the terminal outcome of one delivery attempt.
type DispatchStatus string

const (
	DispatchStatusSent   DispatchStatus = "sent"
	DispatchStatusFailed DispatchStatus = "failed"
)

var validDispatchStatuses = map[DispatchStatus]bool{
	DispatchStatusSent:   true,
	DispatchStatusFailed: true,
}

func (s DispatchStatus) String() string {
	return string(s)
}

func (s DispatchStatus) IsValid() bool {
	return validDispatchStatuses[s]
}

func (s DispatchStatus) IsSent() bool {
	return s == DispatchStatusSent
}

func (s DispatchStatus) IsFailed() bool {
	return s == DispatchStatusFailed
}

func NewDispatchStatus(s string) (DispatchStatus, error) {
	status := DispatchStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid dispatch status: %s", s)
	}
	return status, nil
}
