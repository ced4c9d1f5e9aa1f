// Package theme provides color palettes for hint overlays.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors a hint surface can draw with.
type Theme struct {
	Name    string `toml:"name"`
	Bg      string `toml:"bg"`       // Hint background
	Fg      string `toml:"fg"`       // Primary text
	FgMuted string `toml:"fg_muted"` // Icon, secondary text
	Border  string `toml:"border"`   // Default border

	// Status accents used for the border facing the host.
	Basic   string `toml:"basic"`
	Primary string `toml:"primary"`
	Success string `toml:"success"`
	Info    string `toml:"info"`
	Warning string `toml:"warning"`
	Danger  string `toml:"danger"`
	Control string `toml:"control"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// Accent returns the accent color hex for a status tag. Unknown and empty
// tags map to the basic accent.
func (t *Theme) Accent(status string) string {
	switch strings.ToLower(status) {
	case "primary":
		return t.Primary
	case "success":
		return t.Success
	case "info":
		return t.Info
	case "warning":
		return t.Warning
	case "danger":
		return t.Danger
	case "control":
		return t.Control
	default:
		return t.Basic
	}
}

func (t *Theme) applyDefaults() {
	if t.Border == "" {
		t.Border = coalesce(t.FgMuted, t.Fg)
	}
	if t.Basic == "" {
		t.Basic = t.Border
	}
	if t.Control == "" {
		t.Control = coalesce(t.FgMuted, t.Fg)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
