package code

import (
	"fmt"
	"strings"

	"github.com/mkuran/wordseal/internal/codec"
	"github.com/mkuran/wordseal/internal/core"
)

// macTruncBytes is how many MAC bytes survive truncation: 12 bytes give
// 96 bits, of which the first 90 fit the payload.
const macTruncBytes = 12

// truncateMAC reduces a full oracle MAC to the 90-bit tag embedded in
// codes: expand the first 12 bytes to their 8-bit binary forms, then keep
// the first 90 characters.
func truncateMAC(mac []byte) (string, error) {
	if len(mac) < macTruncBytes {
		return "", fmt.Errorf("%w: oracle returned %d bytes, need at least %d", core.ErrMacService, len(mac), macTruncBytes)
	}
	var sb strings.Builder
	sb.Grow(macTruncBytes * 8)
	for _, b := range mac[:macTruncBytes] {
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String()[:codec.MacBits], nil
}
