// Package demo is the hintbox showcase TUI: a row of buttons, each wired to
// a tooltip coordinator in a different trigger mode.
package demo

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hintbox"
	"github.com/javiermolinar/hintbox/internal/config"
	"github.com/javiermolinar/hintbox/overlay"
	"github.com/javiermolinar/hintbox/position"
	"github.com/javiermolinar/hintbox/theme"
	"github.com/javiermolinar/hintbox/tooltip"
	"github.com/javiermolinar/hintbox/trigger"
)

// Layout constants for the button row.
const (
	marginX   = 4
	buttonTop = 12
	buttonGap = 3
)

// button is one demo host element with its tooltip coordinator.
type button struct {
	id    string
	label string
	mode  trigger.Mode
	rect  hintbox.Rect
	tip   *tooltip.Coordinator
}

// Model is the demo's bubbletea model.
type Model struct {
	cfg  *config.Config
	th   *theme.Theme
	host *overlay.Host

	buttons []*button
	focus   int

	editing bool
	input   textinput.Model

	status string
	width  int
	height int
}

// NewModel builds the demo model from the loaded configuration.
func NewModel(cfg *config.Config) *Model {
	th, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		th, _ = theme.Load("mocha")
	}

	input := textinput.New()
	input.CharLimit = 120
	input.Width = 48

	m := &Model{
		cfg:   cfg,
		th:    th,
		host:  overlay.NewHost(),
		input: input,
	}
	m.buttons = m.buildButtons()
	m.layout()

	for _, b := range m.buttons {
		if err := b.tip.Start(); err != nil {
			LogError("starting tooltip "+b.id, err)
			m.status = err.Error()
		}
	}
	return m
}

// buildButtons creates one host element per trigger mode. The first button
// follows the configured defaults; the rest show off the variety.
func (m *Model) buildButtons() []*button {
	specs := []struct {
		id, label string
		mode      trigger.Mode
		placement position.Placement
		status    string
		icon      string
		text      string
	}{
		{
			id: "save", label: "Save", mode: m.cfg.TriggerMode(),
			placement: m.cfg.Placement(), status: "success", icon: "✓",
			text: "Write the current buffer to disk",
		},
		{
			id: "delete", label: "Delete", mode: trigger.Click,
			placement: position.Bottom, status: "danger", icon: "⚠",
			text: "Remove the item. This cannot be undone",
		},
		{
			id: "help", label: "Help", mode: trigger.Hover,
			placement: position.End, status: "info", icon: "?",
			text: "Hover here and then over the hint itself",
		},
		{
			id: "search", label: "Search", mode: trigger.Focus,
			placement: position.Bottom, status: "primary", icon: "/",
			text: "Focused with tab. Press e to edit this text",
		},
		{
			id: "manual", label: "Manual", mode: trigger.Noop,
			placement: position.Start, status: "basic", icon: "·",
			text: "Shown and hidden only with the t key",
		},
	}

	buttons := make([]*button, 0, len(specs))
	for _, spec := range specs {
		b := &button{id: spec.id, label: spec.label, mode: spec.mode}
		b.tip = tooltip.New(tooltip.HostSurfaces(m.host), b.id,
			func() hintbox.Rect { return b.rect },
			tooltip.WithText(spec.text),
			tooltip.WithIcon(spec.icon),
			tooltip.WithStatus(spec.status),
			tooltip.WithPlacement(spec.placement),
			tooltip.WithAdjustment(m.cfg.Adjustment()),
			tooltip.WithTrigger(spec.mode),
			tooltip.WithTheme(m.th),
		)
		buttons = append(buttons, b)
	}
	return buttons
}

// layout recomputes every button rectangle. Rects feed the coordinators via
// closures, so positions stay current without re-wiring anything.
func (m *Model) layout() {
	x := marginX
	for _, b := range m.buttons {
		w := len([]rune(b.label)) + 4 // padding plus border
		b.rect = hintbox.Rect{X: x, Y: buttonTop, W: w, H: 3}
		x += w + buttonGap
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// focused returns the button holding keyboard focus.
func (m *Model) focused() *button {
	return m.buttons[m.focus]
}

// forward hands a message to every coordinator and the overlay host.
func (m *Model) forward(msg tea.Msg) {
	m.host.HandleMsg(msg)
	for _, b := range m.buttons {
		b.tip.Update(msg)
	}
}

// stopAll tears down every coordinator before quitting.
func (m *Model) stopAll() {
	for _, b := range m.buttons {
		b.tip.Stop()
	}
}
