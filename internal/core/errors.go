package core

import "errors"

var (
	// ErrFormat indicates a malformed code: wrong word count or a bit
	// string whose length is not exactly 100.
	ErrFormat = errors.New("invalid code format")

	// ErrUnknownWord indicates a token that is not part of the dictionary.
	ErrUnknownWord = errors.New("unknown word")

	// ErrKeyRange indicates a key id outside [0, 1023]. On the generation
	// side this signals that the daily counter is exhausted.
	ErrKeyRange = errors.New("key id out of range")

	// ErrMacService indicates the MAC oracle failed or returned an
	// undersized tag. Never retried here; retry policy belongs to the
	// caller.
	ErrMacService = errors.New("mac service error")
)
