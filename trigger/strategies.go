package trigger

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hintbox"
)

// clickStrategy shows on a left press inside the host and hides on a press
// outside both the host and the hint surface.
type clickStrategy struct {
	signals
	host      func() hintbox.Rect
	container func() hintbox.Rect
}

func (s *clickStrategy) Mode() Mode { return Click }

func (s *clickStrategy) HandleMsg(msg tea.Msg) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return
	}

	switch {
	case s.host().Contains(mouse.X, mouse.Y):
		s.emitShow()
	case s.container().Contains(mouse.X, mouse.Y):
		// Clicks on the hint itself keep it open.
	default:
		s.emitHide()
	}
}

// hintStrategy shows while the pointer is over the host.
type hintStrategy struct {
	signals
	host   func() hintbox.Rect
	inside bool
}

func (s *hintStrategy) Mode() Mode { return Hint }

func (s *hintStrategy) HandleMsg(msg tea.Msg) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return
	}

	now := s.host().Contains(mouse.X, mouse.Y)
	if now && !s.inside {
		s.emitShow()
	}
	if !now && s.inside {
		s.emitHide()
	}
	s.inside = now
}

// hoverStrategy shows while the pointer is over the host or the hint
// surface itself.
type hoverStrategy struct {
	signals
	host      func() hintbox.Rect
	container func() hintbox.Rect

	overHost bool
	overAny  bool
}

func (s *hoverStrategy) Mode() Mode { return Hover }

func (s *hoverStrategy) HandleMsg(msg tea.Msg) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return
	}

	overHost := s.host().Contains(mouse.X, mouse.Y)
	overAny := overHost || s.container().Contains(mouse.X, mouse.Y)

	if overHost && !s.overHost {
		s.emitShow()
	}
	if !overAny && s.overAny {
		s.emitHide()
	}
	s.overHost = overHost
	s.overAny = overAny
}

// focusStrategy follows keyboard focus on the host element. A terminal-level
// blur also hides the hint.
type focusStrategy struct {
	signals
	hostID string
}

func (s *focusStrategy) Mode() Mode { return Focus }

func (s *focusStrategy) HandleMsg(msg tea.Msg) {
	switch msg := msg.(type) {
	case FocusMsg:
		if s.matches(msg.ID) {
			s.emitShow()
		}
	case BlurMsg:
		if s.matches(msg.ID) {
			s.emitHide()
		}
	case tea.BlurMsg:
		s.emitHide()
	}
}

func (s *focusStrategy) matches(id string) bool {
	return id == "" || s.hostID == "" || id == s.hostID
}

// noopStrategy never emits on its own; show and hide remain programmatic.
type noopStrategy struct {
	signals
}

func (s *noopStrategy) Mode() Mode { return Noop }

func (s *noopStrategy) HandleMsg(tea.Msg) {}
