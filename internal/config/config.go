// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/hintbox/position"
	"github.com/javiermolinar/hintbox/theme"
	"github.com/javiermolinar/hintbox/trigger"
)

// Config holds the demo application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Tooltip TooltipConfig `toml:"tooltip"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// TooltipConfig holds the default tooltip behavior for the showcase.
type TooltipConfig struct {
	Placement  string `toml:"placement"`  // "top", "right", "bottom", "left", "start", "end"
	Adjustment string `toml:"adjustment"` // "none", "clockwise", "counterclockwise"
	Trigger    string `toml:"trigger"`    // "click", "hover", "hint", "focus", "noop"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "mocha",
		},
		Tooltip: TooltipConfig{
			Placement:  "top",
			Adjustment: "clockwise",
			Trigger:    "hint",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "hintbox", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HINTBOX_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("HINTBOX_PLACEMENT"); v != "" {
		cfg.Tooltip.Placement = v
	}
	if v := os.Getenv("HINTBOX_ADJUSTMENT"); v != "" {
		cfg.Tooltip.Adjustment = v
	}
	if v := os.Getenv("HINTBOX_TRIGGER"); v != "" {
		cfg.Tooltip.Trigger = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}
	if _, err := position.ParsePlacement(c.Tooltip.Placement); err != nil {
		return fmt.Errorf("tooltip placement: %w", err)
	}
	if _, err := position.ParseAdjustment(c.Tooltip.Adjustment); err != nil {
		return fmt.Errorf("tooltip adjustment: %w", err)
	}
	if _, err := trigger.ParseMode(c.Tooltip.Trigger); err != nil {
		return fmt.Errorf("tooltip trigger: %w", err)
	}
	return nil
}

// Placement returns the parsed default placement.
func (c *Config) Placement() position.Placement {
	p, _ := position.ParsePlacement(c.Tooltip.Placement)
	return p
}

// Adjustment returns the parsed default adjustment policy.
func (c *Config) Adjustment() position.Adjustment {
	a, _ := position.ParseAdjustment(c.Tooltip.Adjustment)
	return a
}

// TriggerMode returns the parsed default trigger mode.
func (c *Config) TriggerMode() trigger.Mode {
	m, _ := trigger.ParseMode(c.Tooltip.Trigger)
	return m
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
