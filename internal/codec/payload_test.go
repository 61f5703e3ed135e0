package codec

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/mkuran/wordseal/internal/core"
)

func TestPackUnpack_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, keyID := range []int{0, 1, 5, 511, 1023} {
		tag := randomBits(t, rng, MacBits)

		bits, err := Pack(keyID, tag)
		if err != nil {
			t.Fatalf("Pack(%d) error = %v", keyID, err)
		}
		if len(bits) != PayloadBits {
			t.Fatalf("Pack() returned %d bits, want %d", len(bits), PayloadBits)
		}

		gotKey, gotTag, err := Unpack(bits)
		if err != nil {
			t.Fatalf("Unpack() error = %v", err)
		}
		if gotKey != keyID || gotTag != tag {
			t.Errorf("Unpack() = (%d, %s), want (%d, %s)", gotKey, gotTag, keyID, tag)
		}
	}
}

func TestPack_Errors(t *testing.T) {
	tag := strings.Repeat("0", MacBits)

	for _, keyID := range []int{-1, 1024, 99999} {
		if _, err := Pack(keyID, tag); !errors.Is(err, core.ErrKeyRange) {
			t.Errorf("Pack(%d) error = %v, want ErrKeyRange", keyID, err)
		}
	}

	if _, err := Pack(5, strings.Repeat("0", MacBits-1)); !errors.Is(err, core.ErrFormat) {
		t.Errorf("Pack() with short tag error = %v, want ErrFormat", err)
	}
}

func TestUnpack_Errors(t *testing.T) {
	if _, _, err := Unpack(strings.Repeat("0", 99)); !errors.Is(err, core.ErrFormat) {
		t.Errorf("Unpack() with 99 bits error = %v, want ErrFormat", err)
	}
}

func TestKeyIDBits(t *testing.T) {
	tests := []struct {
		keyID int
		want  string
	}{
		{0, "0000000000"},
		{5, "0000000101"},
		{1023, "1111111111"},
	}
	for _, tt := range tests {
		if got := KeyIDBits(tt.keyID); got != tt.want {
			t.Errorf("KeyIDBits(%d) = %s, want %s", tt.keyID, got, tt.want)
		}
	}
}
