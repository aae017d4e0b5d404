// Package config loads hpanel's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"hpanel/internal/panel"
)

// Config is the on-disk configuration. Distances are in terminal cells.
type Config struct {
	Padding         *float64 `yaml:"padding"`
	PrevOverlap     *float64 `yaml:"prev_overlap"`
	SettleDelay     Duration `yaml:"settle_delay"`
	TickGranularity float64  `yaml:"tick_granularity"`
	MaxColumnWidth  int      `yaml:"max_column_width"`
	Animate         *bool    `yaml:"animate"`
	Dir             string   `yaml:"dir"`
}

// Duration is a time.Duration written as a Go duration string ("300ms").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Terminal-scaled defaults.
const (
	DefaultPadding         = 2
	DefaultPrevOverlap     = 6
	DefaultSettleDelay     = 300 * time.Millisecond
	DefaultMaxColumnWidth  = 60
	DefaultTickGranularity = panel.TickGranularityModern
)

// Default returns a config with every value set to its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/hpanel/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "hpanel", "config.yaml")
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path, creating its directory if needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Padding != nil && *c.Padding < 0 {
		return errors.New("padding must not be negative")
	}
	if c.MaxColumnWidth < 0 {
		return errors.New("max_column_width must not be negative")
	}
	if c.SettleDelay < 0 {
		return errors.New("settle_delay must not be negative")
	}
	return nil
}

func applyDefaults(c *Config) {
	if c.Padding == nil {
		v := float64(DefaultPadding)
		c.Padding = &v
	}
	if c.PrevOverlap == nil {
		v := float64(DefaultPrevOverlap)
		c.PrevOverlap = &v
	}
	if c.SettleDelay == 0 {
		c.SettleDelay = Duration(DefaultSettleDelay)
	}
	if c.TickGranularity <= 0 {
		c.TickGranularity = DefaultTickGranularity
	}
	if c.MaxColumnWidth == 0 {
		c.MaxColumnWidth = DefaultMaxColumnWidth
	}
	if c.Animate == nil {
		v := true
		c.Animate = &v
	}
}

// PanelOptions converts the config to engine options.
func (c *Config) PanelOptions() panel.Options {
	cfg := *c
	applyDefaults(&cfg)
	return panel.Options{
		Padding:         *cfg.Padding,
		PrevOverlap:     *cfg.PrevOverlap,
		SettleDelay:     time.Duration(cfg.SettleDelay),
		TickGranularity: cfg.TickGranularity,
	}
}
