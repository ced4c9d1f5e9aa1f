// Package overlay composites floating surfaces over a base terminal frame.
package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/hintbox"
	"github.com/javiermolinar/hintbox/position"
)

// ScrollPolicy controls what happens to an attached surface when the
// viewport changes.
type ScrollPolicy int

const (
	// Reposition re-runs the position strategy on every viewport change.
	Reposition ScrollPolicy = iota
	// Freeze keeps the surface at the point where it was attached.
	Freeze
)

// Positioner places a w×h content box inside a viewport. Satisfied by
// *position.Strategy.
type Positioner interface {
	Place(w, h int, viewport hintbox.Rect) (hintbox.Point, position.Placement)
}

// Config describes a surface to be created on a Host.
type Config struct {
	Position Positioner
	Scroll   ScrollPolicy
}

// Host owns the viewport and the stack of surfaces layered over it.
// Surfaces render in creation order, so later handles draw on top.
type Host struct {
	viewport hintbox.Rect
	handles  []*Handle
}

// NewHost creates an empty overlay host.
func NewHost() *Host {
	return &Host{}
}

// SetSize updates the viewport dimensions and repositions every attached
// surface whose scroll policy asks for it.
func (h *Host) SetSize(width, height int) {
	h.viewport = hintbox.Rect{W: width, H: height}
	h.Reposition()
}

// Viewport returns the current viewport rectangle.
func (h *Host) Viewport() hintbox.Rect {
	return h.viewport
}

// Reposition re-runs the position strategy of every attached surface with a
// Reposition scroll policy. Call it after the application layout shifts
// under the overlays.
func (h *Host) Reposition() {
	for _, handle := range h.handles {
		if handle.attached && handle.cfg.Scroll == Reposition {
			handle.reposition()
		}
	}
}

// HandleMsg feeds program messages to the host. Window size changes update
// the viewport.
func (h *Host) HandleMsg(msg tea.Msg) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		h.SetSize(size.Width, size.Height)
	}
}

// Create adds a surface to the host and returns its handle. The surface is
// empty until content is attached.
func (h *Host) Create(cfg Config) *Handle {
	handle := &Handle{host: h, cfg: cfg}
	h.handles = append(h.handles, handle)
	return handle
}

// Render composites every attached surface over the base frame. With nothing
// attached the base is returned unchanged.
func (h *Host) Render(base string) string {
	if h.viewport.Empty() {
		return base
	}
	any := false
	for _, handle := range h.handles {
		if handle.attached {
			any = true
			break
		}
	}
	if !any {
		return base
	}

	lines := normalizeBase(base, h.viewport.W, h.viewport.H)
	for _, handle := range h.handles {
		if handle.attached {
			lines = spliceLines(lines, handle.lines, handle.at, h.viewport)
		}
	}
	return strings.Join(lines, "\n")
}

func (h *Host) remove(handle *Handle) {
	for i, cand := range h.handles {
		if cand == handle {
			h.handles = append(h.handles[:i], h.handles[i+1:]...)
			return
		}
	}
}

// Handle is an opaque reference to one floating surface. Content attaches
// and detaches across show/hide cycles; Dispose releases the surface from
// its host for good.
type Handle struct {
	host *Host
	cfg  Config

	lines    []string
	width    int
	height   int
	at       hintbox.Point
	attached bool
	disposed bool
}

// Attach renders the given view into the surface, positioning it via the
// configured strategy. Attaching to a disposed handle is a no-op.
func (d *Handle) Attach(view string) {
	if d.disposed {
		return
	}
	d.setContent(view)
	// Mark attached before the first placement pass: the pass can notify a
	// placement change whose listener immediately calls SetView.
	d.attached = true
	d.reposition()
}

// SetView replaces the surface content in place, re-measuring and
// repositioning it. No-op unless content is attached.
func (d *Handle) SetView(view string) {
	if !d.attached {
		return
	}
	d.setContent(view)
	d.reposition()
}

// Detach releases the rendered content but keeps the surface registered for
// reuse.
func (d *Handle) Detach() {
	d.attached = false
	d.lines = nil
	d.width, d.height = 0, 0
}

// Dispose detaches the content and removes the surface from its host.
func (d *Handle) Dispose() {
	if d.disposed {
		return
	}
	d.Detach()
	d.disposed = true
	if d.host != nil {
		d.host.remove(d)
	}
}

// HasAttached reports whether content is currently attached.
func (d *Handle) HasAttached() bool {
	return d.attached
}

// Bounds returns the on-screen rectangle of the attached content, or an
// empty rect while nothing is shown.
func (d *Handle) Bounds() hintbox.Rect {
	if !d.attached {
		return hintbox.Rect{}
	}
	return hintbox.Rect{X: d.at.X, Y: d.at.Y, W: d.width, H: d.height}
}

func (d *Handle) setContent(view string) {
	lines := strings.Split(view, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	d.lines = lines
	d.width = width
	d.height = len(lines)
}

func (d *Handle) reposition() {
	if d.cfg.Position == nil || d.host == nil {
		return
	}
	d.at, _ = d.cfg.Position.Place(d.width, d.height, d.host.viewport)
}

// normalizeBase pads or trims the base frame to exactly width×height cells.
func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}

// spliceLines draws the surface lines over the base at the given point,
// clipping rows and columns that fall outside the viewport.
func spliceLines(base []string, content []string, at hintbox.Point, viewport hintbox.Rect) []string {
	for i, line := range content {
		row := at.Y + i
		if row < 0 || row >= len(base) {
			continue
		}

		width := lipgloss.Width(line)
		left := at.X
		if left < 0 {
			line = ansi.Cut(line, -left, width)
			width += left
			left = 0
		}
		if width <= 0 {
			continue
		}
		if left >= viewport.W {
			continue
		}
		if left+width > viewport.W {
			line = ansi.Cut(line, 0, viewport.W-left)
			width = viewport.W - left
		}
		if lineWidth := lipgloss.Width(line); lineWidth < width {
			line += strings.Repeat(" ", width-lineWidth)
		}

		baseLine := base[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+width, viewport.W)
		base[row] = leftSlice + line + rightSlice
	}
	return base
}
