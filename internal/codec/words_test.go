package codec

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/mkuran/wordseal/internal/core"
)

func randomBits(t *testing.T, rng *rand.Rand, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		bits := randomBits(t, rng, PayloadBits)

		words, err := EncodeBits(bits)
		if err != nil {
			t.Fatalf("EncodeBits(%q) error = %v", bits, err)
		}
		if len(words) != WordCount {
			t.Fatalf("EncodeBits() returned %d words, want %d", len(words), WordCount)
		}

		got, err := DecodeWords(words)
		if err != nil {
			t.Fatalf("DecodeWords() error = %v", err)
		}
		if got != bits {
			t.Fatalf("round trip mismatch.\nGot:  %s\nWant: %s", got, bits)
		}
	}
}

func TestEncodeBits_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		bits string
		want []string
	}{
		{
			name: "all zero",
			bits: strings.Repeat("0", PayloadBits),
			want: []string{
				"word0000", "word0000", "word0000", "word0000", "word0000",
				"word0000", "word0000", "word0000", "word0000", "word0000",
			},
		},
		{
			name: "all one",
			bits: strings.Repeat("1", PayloadBits),
			want: []string{
				"word1023", "word1023", "word1023", "word1023", "word1023",
				"word1023", "word1023", "word1023", "word1023", "word1023",
			},
		},
		{
			name: "ascending chunks",
			bits: "0000000000" + "0000000001" + "0000000010" + "0000000011" + "0000000100" +
				"0000000101" + "0000000110" + "0000000111" + "0000001000" + "0000001001",
			want: []string{
				"word0000", "word0001", "word0002", "word0003", "word0004",
				"word0005", "word0006", "word0007", "word0008", "word0009",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeBits(tt.bits)
			if err != nil {
				t.Fatalf("EncodeBits() error = %v", err)
			}
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("EncodeBits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeBits_Errors(t *testing.T) {
	tests := []struct {
		name string
		bits string
	}{
		{name: "too short", bits: strings.Repeat("0", 99)},
		{name: "too long", bits: strings.Repeat("0", 101)},
		{name: "empty", bits: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodeBits(tt.bits); !errors.Is(err, core.ErrFormat) {
				t.Errorf("EncodeBits() error = %v, want ErrFormat", err)
			}
		})
	}

	t.Run("non-binary digit", func(t *testing.T) {
		bits := strings.Repeat("0", 99) + "2"
		if _, err := EncodeBits(bits); !errors.Is(err, core.ErrFormat) {
			t.Errorf("EncodeBits() error = %v, want ErrFormat", err)
		}
	})
}

func TestDecodeWords_Errors(t *testing.T) {
	valid := make([]string, WordCount)
	for i := range valid {
		valid[i] = Word(i)
	}

	t.Run("nine words", func(t *testing.T) {
		if _, err := DecodeWords(valid[:9]); !errors.Is(err, core.ErrFormat) {
			t.Errorf("DecodeWords() error = %v, want ErrFormat", err)
		}
	})

	t.Run("eleven words", func(t *testing.T) {
		eleven := append(append([]string{}, valid...), "word0000")
		if _, err := DecodeWords(eleven); !errors.Is(err, core.ErrFormat) {
			t.Errorf("DecodeWords() error = %v, want ErrFormat", err)
		}
	})

	t.Run("unknown word", func(t *testing.T) {
		tokens := append([]string{}, valid...)
		tokens[3] = "wordXXXX"
		if _, err := DecodeWords(tokens); !errors.Is(err, core.ErrUnknownWord) {
			t.Errorf("DecodeWords() error = %v, want ErrUnknownWord", err)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		tokens := append([]string{}, valid...)
		tokens[0] = "Word0000"
		if _, err := DecodeWords(tokens); !errors.Is(err, core.ErrUnknownWord) {
			t.Errorf("DecodeWords() error = %v, want ErrUnknownWord", err)
		}
	})
}

func TestDictionary(t *testing.T) {
	if Word(0) != "word0000" {
		t.Errorf("Word(0) = %s, want word0000", Word(0))
	}
	if Word(1023) != "word1023" {
		t.Errorf("Word(1023) = %s, want word1023", Word(1023))
	}
	if got, ok := Index("word0512"); !ok || got != 512 {
		t.Errorf("Index(word0512) = %d, %v", got, ok)
	}
	if _, ok := Index("word1024"); ok {
		t.Error("Index(word1024) should not exist")
	}
}
