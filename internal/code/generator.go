package code

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkuran/wordseal/internal/codec"
	"github.com/mkuran/wordseal/internal/core"
)

// Generator mints word codes. It is synchronous, stateless and reentrant;
// the only blocking operation is the oracle call.
type Generator struct {
	oracle core.MacOracle
	now    func() time.Time
}

func NewGenerator(oracle core.MacOracle) *Generator {
	return &Generator{
		oracle: oracle,
		now:    time.Now,
	}
}

// WithClock overrides the generator's time source. Used by tests to pin
// the generation hour.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate mints the code for the given key id at the current UTC hour.
// Oracle failures propagate as-is; no partial code is ever returned.
func (g *Generator) Generate(ctx context.Context, keyID int) (string, error) {
	ref := timeRefAt(g.now())

	if keyID < 0 || keyID > codec.MaxKeyID {
		return "", fmt.Errorf("%w: %d", core.ErrKeyRange, keyID)
	}
	keyIDBits := codec.KeyIDBits(keyID)

	mac, err := g.oracle.GenerateMAC(ctx, authMessage(keyIDBits, ref.date, ref.hours))
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrMacService, err)
	}
	tag, err := truncateMAC(mac)
	if err != nil {
		return "", err
	}

	bits, err := codec.Pack(keyID, tag)
	if err != nil {
		return "", err
	}
	tokens, err := codec.EncodeBits(bits)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}
