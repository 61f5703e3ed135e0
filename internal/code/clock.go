// Package code implements the wordseal protocol core: generating codes
// from a key id and the current UTC hour, and validating presented codes
// with a bounded sliding-window search over past hours. Both sides are
// stateless and share nothing but the MAC oracle and the ttl/tolerance
// configuration.
package code

import "time"

// timeRef is the generator's / validator's view of "now": the UTC
// calendar date and the number of whole hours since the Unix epoch, read
// at the same instant. Two timeRefs taken within the same wall hour
// serialize identically, which is what makes generator and validator
// messages byte-compatible.
type timeRef struct {
	date  string // "YYYY-MM-DD", UTC
	hours int64  // hours since the Unix epoch, UTC
}

func timeRefAt(now time.Time) timeRef {
	now = now.UTC()
	return timeRef{
		date:  now.Format("2006-01-02"),
		hours: now.Unix() / 3600,
	}
}
