// Package config carries the stub's fixed identity values. The
// defaults are the conformance constants a client asserts on; a TOML
// file can override them for ad-hoc harnesses, but running the binary
// bare keeps the canonical identity.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Conformance defaults, echoed verbatim in the initialize response.
const (
	DefaultProtocolVersion = "2025-03-26"
	DefaultServerName      = "simple-test-server"
	DefaultServerVersion   = "1.0.0"
)

// Config holds the values reported by the initialize handshake.
type Config struct {
	ProtocolVersion string `toml:"protocol_version"`
	ServerName      string `toml:"server_name"`
	ServerVersion   string `toml:"server_version"`
}

// Default returns the canonical stub identity.
func Default() *Config {
	return &Config{
		ProtocolVersion: DefaultProtocolVersion,
		ServerName:      DefaultServerName,
		ServerVersion:   DefaultServerVersion,
	}
}

// Load returns the defaults overridden by the TOML file at path. An
// empty path returns the defaults unchanged; keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	return cfg, nil
}
