package audit

import (
	"fmt"

	"github.com/mkuran/wordseal/internal/config"
	"github.com/mkuran/wordseal/internal/core"
)

// Build constructs the auditor described by the config section. A
// disabled audit section yields the noop auditor.
func Build(cfg config.AuditConfig) (core.Auditor, error) {
	if !cfg.Enabled {
		return NewNoopAuditor(), nil
	}
	switch cfg.Type {
	case "file":
		return NewFileAuditor(cfg.Path)
	case "memory", "":
		return NewInMemoryAuditor(), nil
	default:
		return nil, fmt.Errorf("unknown auditor type '%s'", cfg.Type)
	}
}
