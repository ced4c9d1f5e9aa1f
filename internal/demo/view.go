package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/hintbox/theme"
)

// View implements tea.Model. The base frame renders first, then the overlay
// host composites every shown hint over it.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}
	return m.host.Render(m.renderBase())
}

func (m *Model) renderBase() string {
	margin := strings.Repeat(" ", marginX)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(m.th.Primary)).
		Render("hintbox demo")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.Color(m.th.FgMuted)).
		Render("every button carries a tooltip; mouse and keyboard both work")

	lines := []string{
		"",
		margin + title,
		margin + subtitle,
	}

	// Pad down so the first box border lands exactly on the buttonTop row.
	for len(lines) < buttonTop {
		lines = append(lines, "")
	}

	row := m.renderButtonRow()
	for _, line := range strings.Split(row, "\n") {
		lines = append(lines, margin+line)
	}

	focused := m.focused()
	lines = append(lines, "", margin+lipgloss.NewStyle().
		Foreground(theme.Color(m.th.FgMuted)).
		Render(fmt.Sprintf("focus: %s (%s trigger)", focused.label, focused.mode)))

	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	lines = append(lines[:m.height-1], margin+m.renderFooter())

	return strings.Join(lines, "\n")
}

func (m *Model) renderButtonRow() string {
	gap := strings.Repeat(" ", buttonGap)
	parts := make([]string, 0, len(m.buttons)*2)
	for i, b := range m.buttons {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderButton(b, i == m.focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderButton(b *button, focused bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(m.th.Border)).
		Padding(0, 1)
	if focused {
		style = style.
			BorderForeground(theme.Color(m.th.Control)).
			Bold(true)
	}
	return style.Render(b.label)
}

func (m *Model) renderFooter() string {
	if m.editing {
		return "edit hint: " + m.input.View()
	}

	help := "tab: focus  t: toggle  e: edit  y: copy  q: quit"
	footer := lipgloss.NewStyle().
		Foreground(theme.Color(m.th.FgMuted)).
		Render(help)
	if m.status != "" {
		footer += "  " + lipgloss.NewStyle().
			Foreground(theme.Color(m.th.Info)).
			Render(m.status)
	}
	return footer
}
