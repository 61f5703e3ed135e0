// Package codec implements the textual representation of wordseal codes:
// a 100-bit payload (10-bit key id + 90-bit truncated MAC) rendered as 10
// words from a fixed 1024-word dictionary.
package codec

import "fmt"

const (
	// DictionarySize is the number of words; each word carries WordBits bits.
	DictionarySize = 1024
	WordBits       = 10

	// WordCount is the number of words per code.
	WordCount = 10

	// PayloadBits is the total bit length of a code.
	PayloadBits = WordCount * WordBits

	// KeyBits is the width of the key id prefix; MacBits is the truncated
	// MAC suffix.
	KeyBits = 10
	MacBits = PayloadBits - KeyBits

	// MaxKeyID is the largest representable key id.
	MaxKeyID = DictionarySize - 1
)

// The dictionary is immutable and process-wide: index i maps to the token
// "word" + zero-padded decimal i, and back.
var (
	words   [DictionarySize]string
	indexOf map[string]int
)

func init() {
	indexOf = make(map[string]int, DictionarySize)
	for i := range words {
		w := fmt.Sprintf("word%04d", i)
		words[i] = w
		indexOf[w] = i
	}
}

// Word returns the dictionary token for the given index.
// It panics if the index is out of range; callers are expected to have
// produced the index from a 10-bit chunk.
func Word(index int) string {
	return words[index]
}

// Index returns the dictionary index of the given token. Lookup is
// case-sensitive and exact.
func Index(word string) (int, bool) {
	i, ok := indexOf[word]
	return i, ok
}
