// Package trigger turns terminal input into show/hide signals for a hint
// attached to a host element.
package trigger

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hintbox"
)

// Mode selects which interactions open and close the hint.
type Mode int

const (
	// Hint shows on pointer-enter and hides on pointer-leave of the host.
	Hint Mode = iota
	// Click shows on a left click inside the host and hides on a click
	// outside it.
	Click
	// Hover behaves like Hint, but moving the pointer onto the hint surface
	// keeps it open.
	Hover
	// Focus shows when the host element gains keyboard focus and hides when
	// it loses it.
	Focus
	// Noop never shows or hides on its own.
	Noop
)

var modeNames = map[Mode]string{
	Hint:  "hint",
	Click: "click",
	Hover: "hover",
	Focus: "focus",
	Noop:  "noop",
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses a trigger mode name.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return Hint, fmt.Errorf("unknown trigger mode %q", s)
}

// FocusMsg reports that the host element identified by ID gained keyboard
// focus. An empty ID matches every focus strategy.
type FocusMsg struct {
	ID string
}

// BlurMsg reports that the host element identified by ID lost keyboard
// focus. An empty ID matches every focus strategy.
type BlurMsg struct {
	ID string
}

// Strategy observes input messages and emits show/hide signals according to
// its mode.
type Strategy interface {
	// Mode returns the interaction policy this strategy implements.
	Mode() Mode
	// HandleMsg feeds one input message to the strategy.
	HandleMsg(msg tea.Msg)
	// OnShow registers a listener for show signals.
	OnShow(fn func()) *hintbox.Subscription
	// OnHide registers a listener for hide signals.
	OnHide(fn func()) *hintbox.Subscription
}

// Builder assembles a Strategy for a host element.
type Builder struct {
	mode      Mode
	hostID    string
	host      func() hintbox.Rect
	container func() hintbox.Rect
}

// NewBuilder returns a Builder with the default Hint mode.
func NewBuilder() *Builder {
	return &Builder{mode: Hint}
}

// Trigger sets the interaction mode.
func (b *Builder) Trigger(m Mode) *Builder {
	b.mode = m
	return b
}

// HostID sets the identifier matched against FocusMsg/BlurMsg targets.
func (b *Builder) HostID(id string) *Builder {
	b.hostID = id
	return b
}

// Host sets the supplier for the host element rectangle.
func (b *Builder) Host(host func() hintbox.Rect) *Builder {
	b.host = host
	return b
}

// Container sets the supplier for the rendered hint rectangle. The supplier
// returns an empty rect while nothing is shown; Hover uses it to keep the
// hint open while the pointer is over it.
func (b *Builder) Container(container func() hintbox.Rect) *Builder {
	b.container = container
	return b
}

// Build returns a strategy for the configured mode.
func (b *Builder) Build() Strategy {
	host := b.host
	if host == nil {
		host = func() hintbox.Rect { return hintbox.Rect{} }
	}
	container := b.container
	if container == nil {
		container = func() hintbox.Rect { return hintbox.Rect{} }
	}

	switch b.mode {
	case Click:
		return &clickStrategy{signals: newSignals(), host: host, container: container}
	case Hover:
		return &hoverStrategy{signals: newSignals(), host: host, container: container}
	case Focus:
		return &focusStrategy{signals: newSignals(), hostID: b.hostID}
	case Noop:
		return &noopStrategy{signals: newSignals()}
	default:
		return &hintStrategy{signals: newSignals(), host: host}
	}
}

// signals holds the show/hide listener registries shared by all strategies.
type signals struct {
	nextID int
	show   map[int]func()
	hide   map[int]func()
}

func newSignals() signals {
	return signals{
		show: make(map[int]func()),
		hide: make(map[int]func()),
	}
}

// OnShow registers a show listener.
func (s *signals) OnShow(fn func()) *hintbox.Subscription {
	id := s.nextID
	s.nextID++
	s.show[id] = fn
	return hintbox.NewSubscription(func() {
		delete(s.show, id)
	})
}

// OnHide registers a hide listener.
func (s *signals) OnHide(fn func()) *hintbox.Subscription {
	id := s.nextID
	s.nextID++
	s.hide[id] = fn
	return hintbox.NewSubscription(func() {
		delete(s.hide, id)
	})
}

func (s *signals) emitShow() {
	for _, fn := range s.show {
		fn()
	}
}

func (s *signals) emitHide() {
	for _, fn := range s.hide {
		fn()
	}
}
