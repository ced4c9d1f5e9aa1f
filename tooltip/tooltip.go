// Package tooltip binds a floating hint to a host element's interaction
// events. The Coordinator is glue: placement math lives in position, input
// detection in trigger, and surface management in overlay; the coordinator
// only routes signals between them.
package tooltip

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hintbox"
	"github.com/javiermolinar/hintbox/hint"
	"github.com/javiermolinar/hintbox/overlay"
	"github.com/javiermolinar/hintbox/position"
	"github.com/javiermolinar/hintbox/theme"
	"github.com/javiermolinar/hintbox/trigger"
)

// Offset is the fixed host-to-hint gap, in cells, every coordinator uses.
const Offset = 8

// Coordinator owns one hint for one host element. It is single-goroutine:
// feed it messages from your program's Update and composite its overlay
// host over your View.
type Coordinator struct {
	positions PositionProvider
	triggers  TriggerProvider
	surfaces  SurfaceHost
	theme     *theme.Theme

	hostID     string
	hostRect   func() hintbox.Rect
	text       string
	icon       string
	status     string
	placement  position.Placement
	adjustment position.Adjustment
	mode       trigger.Mode
	context    map[string]string

	alive    bool
	strategy PositionStrategy
	trig     trigger.Strategy
	surface  Surface
	ref      *hint.Ref
	posSub   *hintbox.Subscription
	subs     []*hintbox.Subscription
}

// Option configures optional coordinator behavior.
type Option func(*Coordinator)

// WithText sets the hint text.
func WithText(text string) Option {
	return func(c *Coordinator) { c.text = text }
}

// WithIcon sets the icon glyph shown before the text.
func WithIcon(icon string) Option {
	return func(c *Coordinator) {
		c.icon = icon
		c.context["icon"] = icon
	}
}

// WithStatus sets the status tag coloring the hint border.
func WithStatus(status string) Option {
	return func(c *Coordinator) {
		c.status = status
		c.context["status"] = status
	}
}

// WithPlacement sets the preferred hint side. Default is top.
func WithPlacement(p position.Placement) Option {
	return func(c *Coordinator) { c.placement = p }
}

// WithAdjustment sets the viewport-fit policy. Default is clockwise.
func WithAdjustment(a position.Adjustment) Option {
	return func(c *Coordinator) { c.adjustment = a }
}

// WithTrigger sets the interaction mode. Default is hint.
func WithTrigger(m trigger.Mode) Option {
	return func(c *Coordinator) { c.mode = m }
}

// WithTheme sets the hint color palette.
func WithTheme(t *theme.Theme) Option {
	return func(c *Coordinator) { c.theme = t }
}

// WithContext merges one key into the hint's context bag.
func WithContext(key, value string) Option {
	return func(c *Coordinator) { c.context[key] = value }
}

// WithPositionProvider overrides the placement engine.
func WithPositionProvider(p PositionProvider) Option {
	return func(c *Coordinator) { c.positions = p }
}

// WithTriggerProvider overrides the interaction detector.
func WithTriggerProvider(p TriggerProvider) Option {
	return func(c *Coordinator) { c.triggers = p }
}

// New creates a coordinator for the host element identified by hostID and
// located by hostRect. Surfaces are created on the given host; call Start
// before feeding messages and Stop when the element leaves the screen.
func New(surfaces SurfaceHost, hostID string, hostRect func() hintbox.Rect, opts ...Option) *Coordinator {
	c := &Coordinator{
		positions:  positionProvider{},
		triggers:   triggerProvider{},
		surfaces:   surfaces,
		hostID:     hostID,
		hostRect:   hostRect,
		placement:  position.Top,
		adjustment: position.Clockwise,
		mode:       trigger.Hint,
		context:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start runs the initialization sequence: it builds the position and
// trigger strategies and subscribes to their notifications. Every
// subscription is gated on the liveness flag, so nothing fires after Stop.
func (c *Coordinator) Start() error {
	if c.alive {
		return nil
	}
	if c.surfaces == nil {
		return fmt.Errorf("tooltip %q: no surface host", c.hostID)
	}

	c.strategy = c.positions.Strategy(c.hostRect, c.placement, c.adjustment, Offset)
	if c.strategy == nil {
		return fmt.Errorf("tooltip %q: position provider returned no strategy", c.hostID)
	}
	c.trig = c.triggers.Strategy(c.mode, c.hostID, c.hostRect, c.containerBounds)
	if c.trig == nil {
		return fmt.Errorf("tooltip %q: trigger provider returned no strategy", c.hostID)
	}

	c.alive = true
	c.posSub = c.subscribePlacement()
	c.subs = append(c.subs,
		c.posSub,
		c.trig.OnShow(func() {
			if c.alive {
				c.Show()
			}
		}),
		c.trig.OnHide(func() {
			if c.alive {
				c.Hide()
			}
		}),
	)
	return nil
}

// subscribePlacement hooks the position strategy's change stream to the
// rendered hint, patching it in place rather than recreating it.
func (c *Coordinator) subscribePlacement() *hintbox.Subscription {
	return c.strategy.OnChange(func(p position.Placement) {
		if !c.alive {
			return
		}
		if c.ref != nil && c.surface != nil {
			c.ref.SetPlacement(p)
			c.surface.SetView(c.ref.View())
		}
	})
}

// Stop flips the liveness flag, cancels all subscriptions, hides the hint,
// and disposes the overlay surface.
func (c *Coordinator) Stop() {
	if !c.alive {
		return
	}
	c.alive = false
	for _, sub := range c.subs {
		sub.Cancel()
	}
	c.subs = nil
	c.posSub = nil

	c.Hide()
	if c.surface != nil {
		c.surface.Dispose()
		c.surface = nil
	}
	c.strategy = nil
	c.trig = nil
}

// Update feeds one program message to the trigger strategy. No-op when the
// coordinator is stopped.
func (c *Coordinator) Update(msg tea.Msg) {
	if !c.alive || c.trig == nil {
		return
	}
	c.trig.HandleMsg(msg)
}

// Show renders the hint. The overlay surface is created lazily on the first
// call and reused afterwards; showing while already shown is a no-op.
func (c *Coordinator) Show() {
	if !c.alive || c.strategy == nil {
		return
	}
	if c.surface == nil {
		c.surface = c.surfaces.Create(overlay.Config{
			Position: c.strategy,
			Scroll:   overlay.Reposition,
		})
	}
	if c.surface.HasAttached() {
		return
	}

	c.ref = hint.NewRef(c.theme, c.props())
	c.surface.Attach(c.ref.View())
}

// Hide detaches the rendered hint and drops the content reference. The
// surface itself is retained for the next Show. No-op while hidden.
func (c *Coordinator) Hide() {
	if c.surface == nil || !c.surface.HasAttached() {
		return
	}
	c.surface.Detach()
	c.ref = nil
}

// Toggle hides the hint when shown and shows it otherwise.
func (c *Coordinator) Toggle() {
	if c.Shown() {
		c.Hide()
	} else {
		c.Show()
	}
}

// Shown reports whether the hint is currently visible.
func (c *Coordinator) Shown() bool {
	return c.surface != nil && c.surface.HasAttached()
}

// Text returns the current hint text.
func (c *Coordinator) Text() string { return c.text }

// SetText updates the hint text and refreshes the visible hint.
func (c *Coordinator) SetText(text string) {
	c.text = text
	c.refresh()
}

// SetPlacement updates the preferred hint side. While started, the placement
// engine is rebuilt and the surface recreated on the next attach, since its
// configuration pins the old strategy; a shown hint is re-shown on the new
// side.
func (c *Coordinator) SetPlacement(p position.Placement) {
	c.placement = p
	if !c.alive {
		return
	}

	shown := c.Shown()
	c.Hide()
	if c.surface != nil {
		c.surface.Dispose()
		c.surface = nil
	}
	if c.posSub != nil {
		c.posSub.Cancel()
	}

	c.strategy = c.positions.Strategy(c.hostRect, c.placement, c.adjustment, Offset)
	c.posSub = c.subscribePlacement()
	c.subs = append(c.subs, c.posSub)
	if shown {
		c.Show()
	}
}

// SetIcon updates the icon and merges it into the context bag.
func (c *Coordinator) SetIcon(icon string) {
	c.icon = icon
	c.context["icon"] = icon
	c.refresh()
}

// SetStatus updates the status tag and merges it into the context bag.
func (c *Coordinator) SetStatus(status string) {
	c.status = status
	c.context["status"] = status
	c.refresh()
}

// SetContext merges one key into the context bag. Existing keys are kept.
func (c *Coordinator) SetContext(key, value string) {
	c.context[key] = value
	c.refresh()
}

// Context returns a copy of the current context bag.
func (c *Coordinator) Context() map[string]string {
	out := make(map[string]string, len(c.context))
	for k, v := range c.context {
		out[k] = v
	}
	return out
}

// props builds the render props wholesale from the current inputs.
func (c *Coordinator) props() hint.Props {
	placement := c.placement.Resolve()
	if c.strategy != nil {
		placement = c.strategy.Effective()
	}
	return hint.Props{
		Placement: placement,
		Content: hint.Content{
			Text:   c.text,
			Icon:   c.icon,
			Status: c.status,
		},
		Context: c.Context(),
	}
}

// refresh re-renders the visible hint after an input change.
func (c *Coordinator) refresh() {
	if c.ref == nil || !c.Shown() {
		return
	}
	c.ref.Update(c.props())
	c.surface.SetView(c.ref.View())
}

// containerBounds supplies the rendered hint's rectangle to the trigger
// strategy, so hover mode can detect the pointer over the hint itself.
func (c *Coordinator) containerBounds() hintbox.Rect {
	if c.surface == nil {
		return hintbox.Rect{}
	}
	return c.surface.Bounds()
}
