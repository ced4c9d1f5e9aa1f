package demo

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hintbox/trigger"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.forward(msg)
		return m, nil

	case tea.KeyMsg:
		LogKeyPress(msg)
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		LogMouse(msg)
		m.forward(msg)
		return m, nil
	}

	return m, nil
}

// updateKeys handles keys in browse mode.
func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopAll()
		return m, tea.Quit

	case "tab":
		m.cycleFocus(1)

	case "shift+tab":
		m.cycleFocus(-1)

	case "t":
		b := m.focused()
		b.tip.Toggle()
		LogTooltip(b.id, "toggle", b.tip.Shown())

	case "e":
		m.editing = true
		m.input.SetValue(m.focused().tip.Text())
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "y":
		b := m.focused()
		if err := clipboard.WriteAll(b.tip.Text()); err != nil {
			LogError("clipboard", err)
			m.status = "clipboard unavailable"
		} else {
			m.status = fmt.Sprintf("copied %q hint text", b.label)
		}
	}

	return m, nil
}

// updateEditing handles keys while the hint text editor is open.
func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		b := m.focused()
		b.tip.SetText(m.input.Value())
		m.editing = false
		m.input.Blur()
		m.status = fmt.Sprintf("updated %q hint text", b.label)
		return m, nil

	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleFocus moves keyboard focus along the button row and tells the focus
// trigger strategies about it.
func (m *Model) cycleFocus(step int) {
	old := m.focused()
	m.focus = (m.focus + step + len(m.buttons)) % len(m.buttons)
	next := m.focused()
	LogFocusChange(old.id, next.id)

	m.forward(trigger.BlurMsg{ID: old.id})
	m.forward(trigger.FocusMsg{ID: next.id})
}
