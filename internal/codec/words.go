package codec

import (
	"fmt"
	"strconv"

	"github.com/mkuran/wordseal/internal/core"
)

// EncodeBits maps a 100-character binary string to its 10-word form.
// The input is split into ten 10-bit chunks, each parsed as an unsigned
// integer and mapped through the dictionary by index.
func EncodeBits(bits string) ([]string, error) {
	if len(bits) != PayloadBits {
		return nil, fmt.Errorf("%w: expected %d bits, got %d", core.ErrFormat, PayloadBits, len(bits))
	}

	out := make([]string, 0, WordCount)
	for i := 0; i < PayloadBits; i += WordBits {
		index, err := strconv.ParseUint(bits[i:i+WordBits], 2, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-binary digit in chunk %q", core.ErrFormat, bits[i:i+WordBits])
		}
		out = append(out, Word(int(index)))
	}
	return out, nil
}

// DecodeWords maps a 10-word sequence back to its 100-character binary
// string. Each word's index is rendered as a zero-padded 10-bit binary
// string; concatenation order is preserved.
func DecodeWords(tokens []string) (string, error) {
	if len(tokens) != WordCount {
		return "", fmt.Errorf("%w: expected %d words, got %d", core.ErrFormat, WordCount, len(tokens))
	}

	bits := make([]byte, 0, PayloadBits)
	for _, tok := range tokens {
		index, ok := Index(tok)
		if !ok {
			return "", fmt.Errorf("%w: %q", core.ErrUnknownWord, tok)
		}
		bits = append(bits, fmt.Sprintf("%010b", index)...)
	}
	return string(bits), nil
}
