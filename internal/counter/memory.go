// Package counter provides the DailyCounter implementations and the
// factory that builds one from configuration.
package counter

import (
	"context"
	"sync"
)

// MemoryCounter hands out per-date integers from process memory. A date
// change resets the sequence to zero; restarting the process does too,
// which re-issues key ids — use the file counter when that matters.
type MemoryCounter struct {
	mu    sync.Mutex
	scope string
	next  int
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

func (c *MemoryCounter) NextValue(_ context.Context, dateScope string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope != dateScope {
		c.scope = dateScope
		c.next = 0
	}
	v := c.next
	c.next++
	return v, nil
}
