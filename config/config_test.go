package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SPXcz/meesign-server/internal/group"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Listen != def.Listen || cfg.DataDir != def.DataDir {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should default to disabled")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
data-dir: /tmp/meesign-test
round-timeout: 30s
max-attempts: 5
protocol-timeouts:
  gg18: 5m
  musig2: 45s
telemetry:
  enabled: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.RoundTimeout != 30*time.Second {
		t.Errorf("round-timeout = %v", cfg.RoundTimeout)
	}
	if cfg.MaxAttempts != 5 {
		t.Errorf("max-attempts = %d", cfg.MaxAttempts)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("telemetry not enabled")
	}

	tc := cfg.TaskConfig()
	if tc.ProtocolTimeouts[group.GG18] != 5*time.Minute {
		t.Errorf("gg18 timeout = %v", tc.ProtocolTimeouts[group.GG18])
	}
	if tc.ProtocolTimeouts[group.Musig2] != 45*time.Second {
		t.Errorf("musig2 timeout = %v", tc.ProtocolTimeouts[group.Musig2])
	}
	if _, ok := tc.ProtocolTimeouts[group.Frost]; ok {
		t.Error("frost timeout should be unset")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `listen: ":9000"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.DataDir != def.DataDir {
		t.Errorf("data-dir = %q, want default %q", cfg.DataDir, def.DataDir)
	}
	if cfg.RoundTimeout != def.RoundTimeout {
		t.Errorf("round-timeout = %v, want default %v", cfg.RoundTimeout, def.RoundTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty listen", `listen: ""`},
		{"empty data dir", `data-dir: ""`},
		{"zero round timeout", "round-timeout: 0s"},
		{"zero max attempts", "max-attempts: 0"},
		{"unknown protocol", "protocol-timeouts:\n  rsa: 5m"},
		{"malformed yaml", "listen: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load accepted an invalid config")
			}
		})
	}
}
