package code

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/mkuran/wordseal/internal/codec"
	"github.com/mkuran/wordseal/internal/core"
)

const (
	DefaultTTLHours       = 24
	DefaultToleranceHours = 1
)

// Validator checks presented word codes without any stored per-code
// state: it re-derives candidate MAC inputs for every hour in a bounded
// window and asks the oracle to recompute each one. Worst case this costs
// ttl + tolerance + 1 oracle calls per validation; that is the deliberate
// price of statelessness.
type Validator struct {
	oracle         core.MacOracle
	ttlHours       int
	toleranceHours int
	now            func() time.Time
}

// NewValidator builds a validator for the given window. ttlHours must be
// positive; toleranceHours covers generator/validator clock skew and is
// probed as negative offsets. The window must match the generator
// deployment's configuration or legitimate codes will be rejected.
func NewValidator(oracle core.MacOracle, ttlHours, toleranceHours int) *Validator {
	if ttlHours <= 0 {
		ttlHours = DefaultTTLHours
	}
	if toleranceHours < 0 {
		toleranceHours = DefaultToleranceHours
	}
	return &Validator{
		oracle:         oracle,
		ttlHours:       ttlHours,
		toleranceHours: toleranceHours,
		now:            time.Now,
	}
}

// WithClock overrides the validator's time source. Used by tests to move
// the validation instant relative to generation.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Validate decodes the presented words and runs the sliding-window search.
//
// Malformed input yields a bad_format verdict, an unmatched MAC yields
// bad_signature; neither is an error. An oracle failure during any probe
// aborts the whole validation with an error instead, so a transient
// outage can never surface as a false bad_signature verdict.
func (v *Validator) Validate(ctx context.Context, wordsString string) (core.Verdict, error) {
	tokens := strings.Fields(wordsString)
	if len(tokens) != codec.WordCount {
		return core.Verdict{Reason: core.ReasonBadFormat}, nil
	}

	bits, err := codec.DecodeWords(tokens)
	if err != nil {
		return core.Verdict{Reason: core.ReasonBadFormat}, nil
	}
	keyID, claimedTag, err := codec.Unpack(bits)
	if err != nil {
		return core.Verdict{Reason: core.ReasonBadFormat}, nil
	}
	keyIDBits := codec.KeyIDBits(keyID)

	ref := timeRefAt(v.now())

	// Probe offsets in ascending order, from -tolerance (code minted in
	// the caller's near future) through ttl hours in the past. The MAC is
	// effectively collision-free, so at most one offset matches and the
	// early exit is deterministic.
	//
	// Every candidate message uses the current UTC date.
	// TODO: handle the UTC midnight rollover; a code minted shortly before
	// midnight stops validating once the date flips, because the
	// reconstructed date no longer matches the generation-time date.
	matched := false
	matchedOffset := 0
	for offset := -v.toleranceHours; offset <= v.ttlHours; offset++ {
		tryHours := ref.hours - int64(offset)

		mac, err := v.oracle.GenerateMAC(ctx, authMessage(keyIDBits, ref.date, tryHours))
		if err != nil {
			return core.Verdict{}, fmt.Errorf("%w: probe at offset %d: %v", core.ErrMacService, offset, err)
		}
		tag, err := truncateMAC(mac)
		if err != nil {
			return core.Verdict{}, err
		}

		if subtle.ConstantTimeCompare([]byte(tag), []byte(claimedTag)) == 1 {
			matched = true
			matchedOffset = offset
			break
		}
	}

	if !matched {
		return core.Verdict{Reason: core.ReasonBadSignature}, nil
	}
	if matchedOffset > v.ttlHours {
		// Unreachable with the window above; kept as a guard so the
		// expiry verdict survives any future widening of the search.
		return core.Verdict{Reason: core.ReasonExpired, AgeHours: matchedOffset}, nil
	}

	return core.Verdict{
		Valid:    true,
		KeyID:    keyID,
		AgeHours: matchedOffset,
	}, nil
}

// TTLHours returns the configured time-to-live.
func (v *Validator) TTLHours() int { return v.ttlHours }
