// Package audit emits pseudonymized events for every validation performed.
// Events record what kind of identifier was checked and how it fared, never
// the identifier itself: the subject field carries a keyed hash so operators
// can correlate repeated lookups without holding PII.
package audit

import "time"

// Event is emitted from the validation service to capture one outcome. Keep
// it transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Kind      string    `json:"kind"`
	Outcome   string    `json:"outcome"`
	Reason    string    `json:"reason,omitempty"`

	// Subject is the keyed hash of the normalized input. Empty only when the
	// input normalized to nothing.
	Subject string `json:"subject,omitempty"`

	ClientIP string `json:"client_ip,omitempty"`
	Device   string `json:"device,omitempty"`
}
