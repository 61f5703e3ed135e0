package counter

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/mkuran/wordseal/internal/config"
	"github.com/mkuran/wordseal/internal/core"
)

const (
	TypeMemory = "memory"
	TypeFile   = "file"
)

type fileConfig struct {
	Path string `mapstructure:"path"`
}

// Build constructs the DailyCounter described by the config section.
func Build(cfg config.CounterConfig) (core.DailyCounter, error) {
	switch cfg.Type {
	case TypeMemory, "":
		return NewMemoryCounter(), nil
	case TypeFile:
		var fc fileConfig
		if err := mapstructure.Decode(cfg.Config, &fc); err != nil {
			return nil, fmt.Errorf("decoding file counter config: %w", err)
		}
		return NewFileCounter(fc.Path)
	default:
		return nil, fmt.Errorf("unknown counter type '%s'", cfg.Type)
	}
}
