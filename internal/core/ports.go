package core

import "context"

// MacOracle computes keyed MACs on behalf of the generator and validator.
// Implementations: local HMAC-SHA256, static (tests/demos).
type MacOracle interface {
	// Name returns the identifier of this oracle (as used in config).
	Name() string

	// GenerateMAC returns the 32-byte keyed MAC for the given message.
	// It must be deterministic for identical (key, message) pairs.
	GenerateMAC(ctx context.Context, message []byte) ([]byte, error)
}

// DailyCounter allocates monotonically increasing integers scoped to a
// UTC calendar date. Reset semantics belong to the implementation; the
// caller only consumes the returned value and treats anything above the
// key-id range as exhaustion, never as wraparound.
type DailyCounter interface {
	// NextValue returns the next unused integer (starting at 0) for the
	// given date scope ("YYYY-MM-DD"). Concurrent callers sharing a scope
	// must each receive a distinct value.
	NextValue(ctx context.Context, dateScope string) (int, error)
}
