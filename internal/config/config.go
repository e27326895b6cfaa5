// Package config loads the connection setup configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"dclink/internal/transport"
)

// Config is the connection setup configuration.
type Config struct {
	Transport TransportConfig `yaml:"transport"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// TransportConfig selects and tunes the underlay.
type TransportConfig struct {
	// Type selects the underlay: tcp, udp, quic or kcp.
	Type string `yaml:"type"`

	// IdleTimeout is the receive idle timer.
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	// Listen is the scrape listen address, empty to disable.
	Listen string `yaml:"listen"`
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Transport.Type == "" {
		c.Transport.Type = "quic"
	}
	if c.Transport.IdleTimeout == 0 {
		c.Transport.IdleTimeout = 30 * time.Second
	}
}

// Validate rejects configurations the connection cannot run with.
func (c *Config) Validate() error {
	switch c.Transport.Type {
	case "tcp", "udp", "quic", "kcp":
	default:
		return fmt.Errorf("unknown transport type: %s", c.Transport.Type)
	}
	if c.Transport.IdleTimeout < 0 {
		return fmt.Errorf("idle_timeout must not be negative")
	}
	return nil
}

// Features resolves the configured underlay's delivery shape. quic here
// means the datagram path; kcp presents a reliable ordered stream.
func (c *Config) Features() transport.Features {
	switch c.Transport.Type {
	case "udp", "quic":
		return transport.UDPFeatures
	default:
		return transport.TCPFeatures
	}
}
