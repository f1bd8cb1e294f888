package dto

import "time"

// TriggerRuleRequest is the manual trigger payload. ItemID narrows the
// trigger to a single record, ignoring the rule's date window.
type TriggerRuleRequest struct {
	ItemID *uint `json:"item_id"`
}

// TriggerResult summarizes one manual trigger run.
type TriggerResult struct {
	Matched int `json:"matched"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// DispatchRecordResponse is one ledger row for the ops API.
type DispatchRecordResponse struct {
	ID          uint      `json:"id"`
	Kind        string    `json:"kind"`
	ReferenceID uint      `json:"reference_id"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Status      string    `json:"status"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListDispatchesResponse wraps a page of recent ledger rows.
type ListDispatchesResponse struct {
	Total   int64                    `json:"total"`
	Records []DispatchRecordResponse `json:"records"`
}
