package core

import "time"

type AuditEntry struct {
	// ID is the unique request ID (X-Correlation-ID)
	ID string `json:"id"`

	// Time is the timestamp of the event
	Time time.Time `json:"time"`

	// Action describing what happened (e.g. "code.issue", "code.validate")
	Action string `json:"action"`

	// KeyID is the principal embedded in the code, where known.
	KeyID int `json:"key_id,omitempty"`

	// Granted reports whether the operation succeeded (a code was issued,
	// or a presented code verified).
	Granted bool `json:"granted"`

	// Reason is the rejection reason for failed validations.
	Reason Reason `json:"reason,omitempty"`

	// AgeHours is the matched code age for validations.
	AgeHours int `json:"age_hours,omitempty"`

	// Error holds a short error description for failed operations.
	Error string `json:"error,omitempty"`
}

type Auditor interface {
	Log(entry AuditEntry) error
	GetRecent(limit int) ([]AuditEntry, error)
	Find(filter func(entry AuditEntry) bool, limit int) ([]AuditEntry, error)
	Close() error
}
