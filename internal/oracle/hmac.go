package oracle

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const TypeHMAC = "hmac"

// HMACOracle computes HMAC-SHA256 over a locally held secret. It is the
// self-hosted stand-in for a managed keyed-MAC service; the shared secret
// must be identical on the generating and validating deployments.
type HMACOracle struct {
	name string
	key  []byte
}

type hmacConfig struct {
	// Secret is the raw shared secret. SecretHex and SecretFile are
	// alternatives; exactly one must be set.
	Secret     string `mapstructure:"secret"`
	SecretHex  string `mapstructure:"secret_hex"`
	SecretFile string `mapstructure:"secret_file"`
}

// NewHMACFromConfig builds the oracle from its inline config map.
func NewHMACFromConfig(name string, raw map[string]any) (*HMACOracle, error) {
	var cfg hmacConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding hmac oracle config: %w", err)
	}

	var key []byte
	switch {
	case cfg.Secret != "":
		key = []byte(cfg.Secret)
	case cfg.SecretHex != "":
		var err error
		if key, err = hex.DecodeString(cfg.SecretHex); err != nil {
			return nil, fmt.Errorf("decoding secret_hex: %w", err)
		}
	case cfg.SecretFile != "":
		data, err := os.ReadFile(cfg.SecretFile)
		if err != nil {
			return nil, fmt.Errorf("reading secret_file: %w", err)
		}
		key = []byte(strings.TrimSpace(string(data)))
	default:
		return nil, fmt.Errorf("hmac oracle requires one of secret, secret_hex, secret_file")
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("hmac oracle secret is empty")
	}

	return &HMACOracle{name: name, key: key}, nil
}

func (o *HMACOracle) Name() string {
	return o.name
}

func (o *HMACOracle) GenerateMAC(_ context.Context, message []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, o.key)
	mac.Write(message)
	return mac.Sum(nil), nil
}
