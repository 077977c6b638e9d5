// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > defaults.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sysdeck-app/backend/internal/snapshot"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "200ms", "1s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all backend configuration.
type Config struct {
	Bridge   BridgeConfig   `yaml:"bridge"`
	Sampling SamplingConfig `yaml:"sampling"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BridgeConfig holds settings for the local GUI bridge.
type BridgeConfig struct {
	Listen string `yaml:"listen"`
}

// SamplingConfig holds telemetry sampling settings.
type SamplingConfig struct {
	// SettleDelay is the wait between the two CPU counter readings a
	// usage percentage needs. Raising it trades latency for accuracy.
	SettleDelay  Duration `yaml:"settle_delay"`
	TopProcesses int      `yaml:"top_processes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bridge: BridgeConfig{
			Listen: "127.0.0.1:8917",
		},
		Sampling: SamplingConfig{
			SettleDelay:  Duration{snapshot.DefaultSettleDelay},
			TopProcesses: snapshot.DefaultTopProcesses,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges
// with defaults. Environment variables override values from the bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Locate searches the standard per-platform config paths and returns
// the first file that exists, or "" when none does.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads configuration from a YAML file and merges with defaults.
// An empty path triggers auto-discovery via Locate; a missing file
// means defaults and environment variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Locate()
	}
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// File doesn't exist: use defaults + env overrides
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables take precedence over file values.
func applyEnvOverrides(cfg *Config) {
	if listen := os.Getenv("SD_BRIDGE_LISTEN"); listen != "" {
		cfg.Bridge.Listen = listen
	}
	if level := os.Getenv("SD_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if delay := os.Getenv("SD_SETTLE_DELAY"); delay != "" {
		if parsed, err := time.ParseDuration(delay); err == nil {
			cfg.Sampling.SettleDelay = Duration{parsed}
		}
	}
}

// Validate checks that the configuration is usable. The bridge must
// bind a loopback address: the backend serves a GUI on the same
// machine and must never be reachable from the network.
func (c *Config) Validate() error {
	host, _, err := net.SplitHostPort(c.Bridge.Listen)
	if err != nil {
		return fmt.Errorf("invalid bridge listen address %q: %w", c.Bridge.Listen, err)
	}
	ip := net.ParseIP(host)
	if host != "localhost" && (ip == nil || !ip.IsLoopback()) {
		return fmt.Errorf("bridge listen address must be loopback (got: %s)", c.Bridge.Listen)
	}
	if c.Sampling.SettleDelay.Duration < 0 {
		return fmt.Errorf("settle delay must not be negative")
	}
	if c.Sampling.TopProcesses <= 0 {
		return fmt.Errorf("top_processes must be positive")
	}
	return nil
}
