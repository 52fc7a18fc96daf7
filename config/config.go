// Package config loads the coordinator daemon configuration.
//
// Config is stored as YAML, by default at /etc/meesign/config.yaml. A missing
// file yields the defaults, which suit a single-host deployment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/task"
)

const DefaultPath = "/etc/meesign/config.yaml"

// Config holds every tunable of the daemon.
type Config struct {
	// Listen is the TCP address the gRPC server binds.
	Listen string `yaml:"listen"`

	// DataDir holds the sqlite database and the CA key material.
	DataDir string `yaml:"data-dir"`

	// RoundTimeout bounds one protocol round attempt. Per-protocol overrides
	// take precedence.
	RoundTimeout time.Duration `yaml:"round-timeout"`

	// ProtocolTimeouts overrides RoundTimeout per protocol, keyed by protocol
	// name (gg18, elgamal, frost, musig2).
	ProtocolTimeouts map[string]time.Duration `yaml:"protocol-timeouts,omitempty"`

	// MaxAttempts is the number of round attempts before a task fails.
	MaxAttempts uint32 `yaml:"max-attempts"`

	Telemetry Telemetry `yaml:"telemetry,omitempty"`
}

// Telemetry configures trace export. Disabled by default.
type Telemetry struct {
	Enabled bool `yaml:"enabled"`
}

func Default() *Config {
	base := task.DefaultConfig()
	return &Config{
		Listen:       ":1337",
		DataDir:      "/var/lib/meesign",
		RoundTimeout: base.RoundTimeout,
		MaxAttempts:  base.MaxAttempts,
	}
}

// Load reads the config file. A missing file is not an error; defaults fill
// any unset field.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data-dir is required")
	}
	if c.RoundTimeout <= 0 {
		return fmt.Errorf("round-timeout must be positive")
	}
	if c.MaxAttempts == 0 {
		return fmt.Errorf("max-attempts must be at least 1")
	}
	for name := range c.ProtocolTimeouts {
		if _, err := parseProtocol(name); err != nil {
			return err
		}
	}
	return nil
}

// TaskConfig translates the file representation into the engine's config.
func (c *Config) TaskConfig() task.Config {
	cfg := task.DefaultConfig()
	cfg.RoundTimeout = c.RoundTimeout
	cfg.MaxAttempts = c.MaxAttempts
	if len(c.ProtocolTimeouts) > 0 {
		cfg.ProtocolTimeouts = make(map[group.Protocol]time.Duration, len(c.ProtocolTimeouts))
		for name, d := range c.ProtocolTimeouts {
			p, err := parseProtocol(name)
			if err != nil {
				continue // rejected by validate
			}
			cfg.ProtocolTimeouts[p] = d
		}
	}
	return cfg
}

func parseProtocol(name string) (group.Protocol, error) {
	switch name {
	case "gg18":
		return group.GG18, nil
	case "elgamal":
		return group.ElGamal, nil
	case "frost":
		return group.Frost, nil
	case "musig2":
		return group.Musig2, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q in protocol-timeouts", name)
	}
}
