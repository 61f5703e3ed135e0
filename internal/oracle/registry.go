// Package oracle provides the MacOracle implementations and the factory
// that builds one from configuration.
package oracle

import (
	"fmt"

	"github.com/mkuran/wordseal/internal/config"
	"github.com/mkuran/wordseal/internal/core"
)

// Build constructs the MacOracle described by the config section.
func Build(cfg config.OracleConfig) (core.MacOracle, error) {
	name := cfg.Name
	if name == "" {
		name = cfg.Type
	}
	switch cfg.Type {
	case TypeHMAC:
		return NewHMACFromConfig(name, cfg.Config)
	case TypeStatic:
		return NewStaticFromConfig(name, cfg.Config)
	default:
		return nil, fmt.Errorf("unknown oracle type '%s'", cfg.Type)
	}
}
