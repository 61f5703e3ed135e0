package codec

import (
	"fmt"
	"strconv"

	"github.com/mkuran/wordseal/internal/core"
)

// Pack builds the 100-bit payload from a key id and a 90-bit MAC tag.
func Pack(keyID int, macTag string) (string, error) {
	if keyID < 0 || keyID > MaxKeyID {
		return "", fmt.Errorf("%w: %d", core.ErrKeyRange, keyID)
	}
	if len(macTag) != MacBits {
		return "", fmt.Errorf("%w: expected %d tag bits, got %d", core.ErrFormat, MacBits, len(macTag))
	}
	return KeyIDBits(keyID) + macTag, nil
}

// Unpack splits a 100-bit payload into its key id and 90-bit MAC tag.
func Unpack(bits string) (int, string, error) {
	if len(bits) != PayloadBits {
		return 0, "", fmt.Errorf("%w: expected %d bits, got %d", core.ErrFormat, PayloadBits, len(bits))
	}
	keyID, err := strconv.ParseUint(bits[:KeyBits], 2, 32)
	if err != nil {
		return 0, "", fmt.Errorf("%w: non-binary digit in key id", core.ErrFormat)
	}
	return int(keyID), bits[KeyBits:], nil
}

// KeyIDBits renders a key id as its exact 10-digit binary form, the form
// used both in the payload prefix and in the MAC input message.
func KeyIDBits(keyID int) string {
	return fmt.Sprintf("%010b", keyID)
}
