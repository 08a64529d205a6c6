// Package config holds the runtime configuration and constructs the
// program logger.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ViewportConfig overrides the rendering area. Zero values mean "use
// the terminal size".
type ViewportConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// NetworkConfig configures page fetching.
type NetworkConfig struct {
	TimeoutSeconds int    `yaml:"timeout,omitempty"`
	UserAgent      string `yaml:"user_agent,omitempty"`
}

// Timeout returns the configured network timeout.
func (n NetworkConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of none, normal or debug.
	Level string `yaml:"level,omitempty"`
	// Destination is a log file path; empty logs to stderr. A file
	// destination is required while the UI owns the terminal.
	Destination string `yaml:"destination,omitempty"`
}

// Config is the program configuration.
type Config struct {
	Viewport   ViewportConfig `yaml:"viewport,omitempty"`
	Stylesheet string         `yaml:"stylesheet,omitempty"`
	Network    NetworkConfig  `yaml:"network,omitempty"`
	Logging    LoggingConfig  `yaml:"logging,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Network: NetworkConfig{TimeoutSeconds: 30},
		Logging: LoggingConfig{Level: "none"},
	}
}

// Load overlays a YAML configuration file on the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "", "none", "normal", "debug":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport size must not be negative")
	}
	if c.Network.TimeoutSeconds < 0 {
		return fmt.Errorf("network timeout must not be negative")
	}
	return nil
}
