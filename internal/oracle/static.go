package oracle

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

const TypeStatic = "static"

// StaticOracle returns the same fixed MAC for every message. It exists
// for demos and for tests that need bit-exact, message-independent tags.
// Never deploy it: it accepts any code whose tag matches the fixture.
type StaticOracle struct {
	name string
	mac  []byte
}

type staticConfig struct {
	MacHex string `mapstructure:"mac_hex"`
}

func NewStaticFromConfig(name string, raw map[string]any) (*StaticOracle, error) {
	var cfg staticConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding static oracle config: %w", err)
	}
	mac, err := hex.DecodeString(cfg.MacHex)
	if err != nil {
		return nil, fmt.Errorf("decoding mac_hex: %w", err)
	}
	if len(mac) == 0 {
		return nil, fmt.Errorf("static oracle requires mac_hex")
	}
	return NewStatic(name, mac), nil
}

func NewStatic(name string, mac []byte) *StaticOracle {
	return &StaticOracle{name: name, mac: mac}
}

func (o *StaticOracle) Name() string {
	return o.name
}

func (o *StaticOracle) GenerateMAC(ctx context.Context, _ []byte) ([]byte, error) {
	log.Ctx(ctx).Debug().Str("oracle", o.name).Msg("StaticOracle GenerateMAC called")
	out := make([]byte, len(o.mac))
	copy(out, o.mac)
	return out, nil
}
