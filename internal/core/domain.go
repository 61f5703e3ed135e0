package core

import "time"

// CodeArtifact is the result of a successful Issue operation.
type CodeArtifact struct {
	// Words is the code itself: 10 space-separated dictionary words.
	// It is self-contained; validation needs no lookup beyond the shared
	// MAC key.
	Words string `json:"words"`

	// KeyID is the 10-bit principal identifier embedded in the code.
	KeyID int `json:"key_id"`

	// ExpiresAt indicates when this code stops validating.
	// Expiry is purely time-computed; there is no revocation.
	ExpiresAt time.Time `json:"expires_at"`
}

// Reason classifies why a validation attempt was rejected.
// Reasons are informational and must never be used as an authorization
// signal themselves.
type Reason string

const (
	// ReasonBadFormat means the input was not a well-formed 10-word code.
	ReasonBadFormat Reason = "bad_format"

	// ReasonBadSignature means no offset in the search window produced a
	// matching MAC.
	ReasonBadSignature Reason = "bad_signature"

	// ReasonExpired means a MAC matched, but at an offset beyond the TTL.
	ReasonExpired Reason = "expired"
)

// Verdict is the outcome of validating a code.
type Verdict struct {
	// Valid reports whether the code verified inside the TTL window.
	Valid bool `json:"valid"`

	// Reason is set when Valid is false.
	Reason Reason `json:"reason,omitempty"`

	// KeyID is the principal embedded in the code.
	// Only meaningful when Valid is true.
	KeyID int `json:"key_id,omitempty"`

	// AgeHours is the matched offset in hours: 0 for a fresh code, -1 for
	// a code minted slightly in the future by a skewed generator clock.
	// Only meaningful when a MAC matched.
	AgeHours int `json:"age_hours,omitempty"`
}
