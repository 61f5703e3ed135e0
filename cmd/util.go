package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mkuran/wordseal/internal/audit"
	"github.com/mkuran/wordseal/internal/code"
	"github.com/mkuran/wordseal/internal/config"
	"github.com/mkuran/wordseal/internal/core"
	"github.com/mkuran/wordseal/internal/counter"
	"github.com/mkuran/wordseal/internal/oracle"
	"github.com/mkuran/wordseal/internal/service"
	"github.com/mkuran/wordseal/pkg/client"
)

func getClient() (*client.Client, error) {
	addr := viper.GetString(ServerAddrKey)
	if addr == "" {
		return nil, fmt.Errorf("no server address configured (set --server or WORDSEAL_ADDR)")
	}

	var opts []client.Option
	if token := viper.GetString(AuthTokenKey); token != "" {
		opts = append(opts, client.WithAuthToken(token))
	}
	return client.New(addr, opts...)
}

// buildService wires a CodeService from a loaded config, for commands
// that run without a server.
func buildService(cfg *config.Config) (*service.CodeService, core.Auditor, error) {
	orc, err := oracle.Build(cfg.Oracle)
	if err != nil {
		return nil, nil, fmt.Errorf("building oracle: %w", err)
	}
	cnt, err := counter.Build(cfg.Counter)
	if err != nil {
		return nil, nil, fmt.Errorf("building counter: %w", err)
	}
	auditor, err := audit.Build(cfg.Audit)
	if err != nil {
		return nil, nil, fmt.Errorf("building auditor: %w", err)
	}

	svc := service.NewCodeService(
		cnt,
		code.NewGenerator(orc),
		code.NewValidator(orc, cfg.Code.TTLHours, cfg.Code.ToleranceHours),
		auditor,
	)
	return svc, auditor, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
