package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FileCounter persists the per-date sequence in a small JSON state file
// so key ids survive process restarts. Atomicity is process-local (mutex
// plus write-then-rename); running multiple generators against the same
// file is not supported.
type FileCounter struct {
	mu   sync.Mutex
	path string
}

type counterState struct {
	Scope string `json:"scope"`
	Next  int    `json:"next"`
}

func NewFileCounter(path string) (*FileCounter, error) {
	if path == "" {
		return nil, fmt.Errorf("file counter requires a path")
	}
	return &FileCounter{path: path}, nil
}

func (c *FileCounter) NextValue(_ context.Context, dateScope string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.load()
	if err != nil {
		return 0, err
	}
	if state.Scope != dateScope {
		state.Scope = dateScope
		state.Next = 0
	}

	v := state.Next
	state.Next++
	if err := c.store(state); err != nil {
		return 0, err
	}
	return v, nil
}

func (c *FileCounter) load() (counterState, error) {
	var state counterState
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("reading counter state: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("parsing counter state: %w", err)
	}
	return state, nil
}

func (c *FileCounter) store(state counterState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding counter state: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing counter state: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replacing counter state: %w", err)
	}
	return nil
}
