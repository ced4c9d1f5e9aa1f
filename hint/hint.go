// Package hint renders the floating hint box shown by a tooltip.
package hint

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/hintbox/position"
	"github.com/javiermolinar/hintbox/theme"
)

// Status tags understood by the built-in renderer. The tag picks the accent
// color of the hint border; see theme.Accent.
const (
	StatusBasic   = "basic"
	StatusPrimary = "primary"
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusWarning = "warning"
	StatusDanger  = "danger"
	StatusControl = "control"
)

// maxTextWidth is the widest a hint body grows before wrapping.
const maxTextWidth = 40

// Content is the immutable snapshot of what a hint displays.
type Content struct {
	Text   string
	Icon   string
	Status string
}

// Props is everything a rendered hint needs. It is rebuilt wholesale
// whenever an input changes; Context carries auxiliary data merged in by
// the coordinator.
type Props struct {
	Placement position.Placement
	Content   Content
	Context   map[string]string
}

// clone returns a deep copy so stored props never alias caller maps.
func (p Props) clone() Props {
	out := p
	if p.Context != nil {
		out.Context = make(map[string]string, len(p.Context))
		for k, v := range p.Context {
			out.Context[k] = v
		}
	}
	return out
}

// Ref is a rendered hint instance. The placement can be patched in place
// without recreating the hint.
type Ref struct {
	theme *theme.Theme
	props Props
}

// NewRef creates a hint instance. A nil theme falls back to mocha.
func NewRef(t *theme.Theme, props Props) *Ref {
	if t == nil {
		t, _ = theme.Load("mocha")
	}
	return &Ref{theme: t, props: props.clone()}
}

// Props returns a copy of the current render props.
func (r *Ref) Props() Props {
	return r.props.clone()
}

// Update replaces the render props wholesale.
func (r *Ref) Update(props Props) {
	r.props = props.clone()
}

// SetPlacement patches only the placement, leaving content untouched.
func (r *Ref) SetPlacement(p position.Placement) {
	r.props.Placement = p
}

// Placement returns the current placement.
func (r *Ref) Placement() position.Placement {
	return r.props.Placement
}

// View renders the hint box. The border edge facing the host is drawn heavy
// so the hint visually points at its element.
func (r *Ref) View() string {
	t := r.theme
	accent := t.Accent(r.props.Content.Status)

	body := r.props.Content.Text
	if r.props.Content.Icon != "" {
		body = r.props.Content.Icon + " " + body
	}

	style := lipgloss.NewStyle().
		Border(borderFor(r.props.Placement)).
		BorderForeground(theme.Color(accent)).
		BorderBackground(theme.Color(t.Bg)).
		Background(theme.Color(t.Bg)).
		Foreground(theme.Color(t.Fg)).
		Padding(0, 1)

	if lipgloss.Width(body) > maxTextWidth {
		style = style.Width(maxTextWidth)
	}

	return style.Render(body)
}

// borderFor returns a rounded border whose edge facing the host is heavy.
// A hint placed on top sits above its host, so the bottom edge faces it.
func borderFor(p position.Placement) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	switch p.Resolve() {
	case position.Top:
		border.Bottom = "━"
	case position.Bottom:
		border.Top = "━"
	case position.Left:
		border.Right = "┃"
	case position.Right:
		border.Left = "┃"
	}
	return border
}
