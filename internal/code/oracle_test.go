package code

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
)

// hmacOracle is the in-process stand-in for the real MAC service:
// deterministic per (key, message), collision-free for our purposes.
type hmacOracle struct {
	key []byte
}

func (o *hmacOracle) Name() string { return "test-hmac" }

func (o *hmacOracle) GenerateMAC(_ context.Context, message []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, o.key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// scriptedOracle answers fixed bytes for known messages and falls back to
// an unkeyed hash otherwise, so unknown messages never match a fixture.
type scriptedOracle struct {
	responses map[string][]byte
}

func (o *scriptedOracle) Name() string { return "test-scripted" }

func (o *scriptedOracle) GenerateMAC(_ context.Context, message []byte) ([]byte, error) {
	if mac, ok := o.responses[string(message)]; ok {
		out := make([]byte, len(mac))
		copy(out, mac)
		return out, nil
	}
	sum := sha256.Sum256(message)
	return sum[:], nil
}

// failingOracle fails every call.
type failingOracle struct {
	err error
}

func (o *failingOracle) Name() string { return "test-failing" }

func (o *failingOracle) GenerateMAC(context.Context, []byte) ([]byte, error) {
	return nil, o.err
}

// shortOracle returns fewer bytes than the truncation needs.
type shortOracle struct{}

func (o *shortOracle) Name() string { return "test-short" }

func (o *shortOracle) GenerateMAC(context.Context, []byte) ([]byte, error) {
	return []byte{0x01, 0x02, 0x03}, nil
}
