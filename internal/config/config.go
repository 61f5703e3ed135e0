package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Code    CodeConfig    `yaml:"code"`
	Oracle  OracleConfig  `yaml:"oracle"`
	Counter CounterConfig `yaml:"counter"`
	Audit   AuditConfig   `yaml:"audit"`
}

type ServerConfig struct {
	// Addr is the listen address of the HTTP API.
	Addr string `yaml:"addr"`

	// AdminSigningKey is the HMAC key used to verify admin JWTs on the
	// /v1/admin routes.
	AdminSigningKey string `yaml:"admin_signing_key"`
}

// CodeConfig is the shared protocol window. It must match exactly between
// generating and validating deployments or legitimate codes will be
// rejected.
type CodeConfig struct {
	// TTLHours is how many hours after generation a code is accepted.
	TTLHours int `yaml:"ttl_hours"`

	// ToleranceHours is the clock-skew allowance, probed as negative
	// offsets during validation.
	ToleranceHours int `yaml:"tolerance_hours"`
}

// OracleConfig selects and configures the keyed-MAC oracle.
type OracleConfig struct {
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`    // e.g., "hmac", "static"
	Config map[string]any `yaml:",inline"` // Capture remaining fields
}

// CounterConfig selects and configures the daily key-id counter.
type CounterConfig struct {
	Type   string         `yaml:"type"`    // e.g., "memory", "file"
	Config map[string]any `yaml:",inline"` // Capture remaining fields
}

// AuditConfig holds configuration for auditing.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Type    string `yaml:"type"` // e.g., "file", "memory"
}

const (
	DefaultAddr           = ":8420"
	DefaultTTLHours       = 24
	DefaultToleranceHours = 1
)

// Load reads and parses the configuration file at the given path.
// It returns a Config struct or an error if loading/parsing/validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Code: CodeConfig{
			TTLHours:       DefaultTTLHours,
			ToleranceHours: DefaultToleranceHours,
		},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Code.TTLHours <= 0 {
		return fmt.Errorf("code.ttl_hours must be positive, got %d", c.Code.TTLHours)
	}
	if c.Code.ToleranceHours < 0 {
		return fmt.Errorf("code.tolerance_hours must not be negative, got %d", c.Code.ToleranceHours)
	}
	if c.Oracle.Type == "" {
		return fmt.Errorf("oracle.type is required")
	}
	if c.Audit.Enabled && c.Audit.Type == "file" && c.Audit.Path == "" {
		return fmt.Errorf("audit.path is required for the file auditor")
	}
	return nil
}
