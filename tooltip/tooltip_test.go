package tooltip

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hintbox"
	"github.com/javiermolinar/hintbox/overlay"
	"github.com/javiermolinar/hintbox/position"
	"github.com/javiermolinar/hintbox/trigger"
)

// --- fakes ---

type fakeStrategy struct {
	effective position.Placement
	nextID    int
	listeners map[int]func(position.Placement)
}

func newFakeStrategy(p position.Placement) *fakeStrategy {
	return &fakeStrategy{
		effective: p.Resolve(),
		listeners: make(map[int]func(position.Placement)),
	}
}

func (s *fakeStrategy) Place(w, h int, viewport hintbox.Rect) (hintbox.Point, position.Placement) {
	return hintbox.Point{}, s.effective
}

func (s *fakeStrategy) Effective() position.Placement { return s.effective }

func (s *fakeStrategy) OnChange(fn func(position.Placement)) *hintbox.Subscription {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return hintbox.NewSubscription(func() { delete(s.listeners, id) })
}

func (s *fakeStrategy) emit(p position.Placement) {
	s.effective = p
	for _, fn := range s.listeners {
		fn(p)
	}
}

type positionCall struct {
	placement  position.Placement
	adjustment position.Adjustment
	offset     int
}

type fakePositions struct {
	calls []positionCall
	built []*fakeStrategy
}

func (f *fakePositions) Strategy(host func() hintbox.Rect, p position.Placement, a position.Adjustment, offset int) PositionStrategy {
	f.calls = append(f.calls, positionCall{placement: p, adjustment: a, offset: offset})
	s := newFakeStrategy(p)
	f.built = append(f.built, s)
	return s
}

type fakeTriggerStrategy struct {
	mode   trigger.Mode
	nextID int
	show   map[int]func()
	hide   map[int]func()
}

func newFakeTriggerStrategy(m trigger.Mode) *fakeTriggerStrategy {
	return &fakeTriggerStrategy{
		mode: m,
		show: make(map[int]func()),
		hide: make(map[int]func()),
	}
}

func (s *fakeTriggerStrategy) Mode() trigger.Mode { return s.mode }

func (s *fakeTriggerStrategy) HandleMsg(tea.Msg) {}

func (s *fakeTriggerStrategy) emitShow() {
	for _, fn := range s.show {
		fn()
	}
}
func (s *fakeTriggerStrategy) emitHide() {
	for _, fn := range s.hide {
		fn()
	}
}

func (s *fakeTriggerStrategy) OnShow(fn func()) *hintbox.Subscription {
	id := s.nextID
	s.nextID++
	s.show[id] = fn
	return hintbox.NewSubscription(func() { delete(s.show, id) })
}

func (s *fakeTriggerStrategy) OnHide(fn func()) *hintbox.Subscription {
	id := s.nextID
	s.nextID++
	s.hide[id] = fn
	return hintbox.NewSubscription(func() { delete(s.hide, id) })
}

type fakeTriggers struct {
	built []*fakeTriggerStrategy
}

func (f *fakeTriggers) Strategy(mode trigger.Mode, hostID string, host, container func() hintbox.Rect) trigger.Strategy {
	s := newFakeTriggerStrategy(mode)
	f.built = append(f.built, s)
	return s
}

type fakeSurface struct {
	attached    bool
	disposed    bool
	attachments int
	view        string
	setViews    int
}

func (s *fakeSurface) Attach(view string) {
	if s.disposed {
		return
	}
	s.attached = true
	s.attachments++
	s.view = view
}

func (s *fakeSurface) SetView(view string) {
	if !s.attached {
		return
	}
	s.view = view
	s.setViews++
}

func (s *fakeSurface) Detach()  { s.attached = false }
func (s *fakeSurface) Dispose() { s.attached = false; s.disposed = true }

func (s *fakeSurface) HasAttached() bool { return s.attached }

func (s *fakeSurface) Bounds() hintbox.Rect {
	if !s.attached {
		return hintbox.Rect{}
	}
	return hintbox.Rect{W: 10, H: 3}
}

type fakeHost struct {
	configs  []overlay.Config
	surfaces []*fakeSurface
}

func (f *fakeHost) Create(cfg overlay.Config) Surface {
	f.configs = append(f.configs, cfg)
	s := &fakeSurface{}
	f.surfaces = append(f.surfaces, s)
	return s
}

func hostAt(r hintbox.Rect) func() hintbox.Rect {
	return func() hintbox.Rect { return r }
}

func newTestCoordinator(t *testing.T, opts ...Option) (*Coordinator, *fakeHost, *fakePositions, *fakeTriggers) {
	t.Helper()
	host := &fakeHost{}
	positions := &fakePositions{}
	triggers := &fakeTriggers{}

	opts = append(opts,
		WithPositionProvider(positions),
		WithTriggerProvider(triggers),
	)
	c := New(host, "host", hostAt(hintbox.Rect{X: 10, Y: 10, W: 4, H: 1}), opts...)
	if err := c.Start(); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	return c, host, positions, triggers
}

// --- tests ---

func TestShowCreatesOneConfiguredSurface(t *testing.T) {
	placements := []position.Placement{
		position.Top, position.Right, position.Bottom,
		position.Left, position.Start, position.End,
	}
	adjustments := []position.Adjustment{
		position.None, position.Clockwise, position.Counterclockwise,
	}

	for _, p := range placements {
		for _, a := range adjustments {
			t.Run(p.String()+"/"+a.String(), func(t *testing.T) {
				c, host, positions, _ := newTestCoordinator(t,
					WithText("hi"),
					WithPlacement(p),
					WithAdjustment(a),
				)
				c.Show()

				if len(host.configs) != 1 {
					t.Fatalf("expected exactly one surface creation, got %d", len(host.configs))
				}
				if len(positions.calls) != 1 {
					t.Fatalf("expected one strategy build, got %d", len(positions.calls))
				}
				call := positions.calls[0]
				if call.placement != p || call.adjustment != a || call.offset != Offset {
					t.Fatalf("strategy built with %+v, want {%v %v %d}", call, p, a, Offset)
				}
				cfg := host.configs[0]
				if got, ok := cfg.Position.(*fakeStrategy); !ok || got != positions.built[0] {
					t.Fatalf("surface configured with a different position strategy")
				}
				if cfg.Scroll != overlay.Reposition {
					t.Fatalf("surface scroll policy = %v, want Reposition", cfg.Scroll)
				}
			})
		}
	}
}

func TestShowIsIdempotent(t *testing.T) {
	c, host, _, _ := newTestCoordinator(t, WithText("hi"))

	c.Show()
	c.Show()

	if len(host.surfaces) != 1 {
		t.Fatalf("expected one surface, got %d", len(host.surfaces))
	}
	if host.surfaces[0].attachments != 1 {
		t.Fatalf("expected one attachment, got %d", host.surfaces[0].attachments)
	}
}

func TestHideWhileHiddenIsNoop(t *testing.T) {
	c, host, _, _ := newTestCoordinator(t)

	c.Hide() // nothing shown yet, must not panic or create anything
	if len(host.surfaces) != 0 {
		t.Fatalf("hide created a surface")
	}

	c.Show()
	c.Hide()
	c.Hide() // second hide is a no-op too
	if host.surfaces[0].attached {
		t.Fatalf("expected surface detached")
	}
}

func TestHideRetainsSurfaceForReuse(t *testing.T) {
	c, host, _, _ := newTestCoordinator(t, WithText("hi"))

	c.Show()
	c.Hide()
	c.Show()

	if len(host.surfaces) != 1 {
		t.Fatalf("expected the surface to be reused, got %d surfaces", len(host.surfaces))
	}
	if host.surfaces[0].attachments != 2 {
		t.Fatalf("expected a fresh attachment per show, got %d", host.surfaces[0].attachments)
	}
	if host.surfaces[0].disposed {
		t.Fatalf("hide must not dispose the surface")
	}
}

func TestToggleAlternates(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t, WithText("hi"))

	if c.Shown() {
		t.Fatalf("expected coordinator to start hidden")
	}
	c.Toggle()
	if !c.Shown() {
		t.Fatalf("first toggle should show")
	}
	c.Toggle()
	if c.Shown() {
		t.Fatalf("second toggle should hide")
	}
	c.Toggle()
	if !c.Shown() {
		t.Fatalf("third toggle should show again")
	}
}

func TestTriggerSignalsRouteToShowHide(t *testing.T) {
	c, _, _, triggers := newTestCoordinator(t, WithText("hi"))
	trig := triggers.built[0]

	trig.emitShow()
	if !c.Shown() {
		t.Fatalf("show signal did not show the hint")
	}
	trig.emitHide()
	if c.Shown() {
		t.Fatalf("hide signal did not hide the hint")
	}
}

func TestPlacementChangePatchesRenderedHint(t *testing.T) {
	c, host, positions, _ := newTestCoordinator(t, WithText("hi"))
	c.Show()

	surface := host.surfaces[0]
	before := surface.setViews

	positions.built[0].emit(position.Right)
	if surface.setViews != before+1 {
		t.Fatalf("expected placement change to patch the view")
	}
	if c.ref.Placement() != position.Right {
		t.Fatalf("rendered placement = %v, want %v", c.ref.Placement(), position.Right)
	}
}

func TestStopSilencesNotifications(t *testing.T) {
	c, host, positions, triggers := newTestCoordinator(t, WithText("hi"))
	c.Show()

	surface := host.surfaces[0]
	strategy := positions.built[0]
	trig := triggers.built[0]

	c.Stop()
	if !surface.disposed {
		t.Fatalf("expected Stop to dispose the surface")
	}

	views := surface.setViews
	strategy.emit(position.Left)
	if surface.setViews != views {
		t.Fatalf("position change after Stop patched the view")
	}

	trig.emitShow()
	if len(host.surfaces) != 1 {
		t.Fatalf("show signal after Stop created a surface")
	}
	if c.Shown() {
		t.Fatalf("show signal after Stop showed the hint")
	}
}

func TestShowAfterStopIsNoop(t *testing.T) {
	c, host, _, _ := newTestCoordinator(t, WithText("hi"))
	c.Stop()

	c.Show()
	if len(host.surfaces) != 0 {
		t.Fatalf("Show after Stop created a surface")
	}
}

func TestContextMergesInputs(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t)

	c.SetIcon("⚠")
	c.SetStatus("danger")
	c.SetContext("note", "be careful")

	ctx := c.Context()
	if ctx["icon"] != "⚠" {
		t.Fatalf("icon missing from context: %v", ctx)
	}
	if ctx["status"] != "danger" {
		t.Fatalf("status missing from context after setting icon first: %v", ctx)
	}
	if ctx["note"] != "be careful" {
		t.Fatalf("custom key missing from context: %v", ctx)
	}
}

func TestSettersRefreshVisibleHint(t *testing.T) {
	c, host, _, _ := newTestCoordinator(t, WithText("old"))
	c.Show()

	surface := host.surfaces[0]
	before := surface.setViews

	c.SetText("new")
	if surface.setViews != before+1 {
		t.Fatalf("expected SetText to refresh the visible hint")
	}
	if c.Text() != "new" {
		t.Fatalf("Text() = %q, want %q", c.Text(), "new")
	}
}

func TestSetPlacementRebuildsShownHint(t *testing.T) {
	c, host, positions, _ := newTestCoordinator(t, WithText("hi"))
	c.Show()

	c.SetPlacement(position.Left)

	if len(positions.calls) != 2 {
		t.Fatalf("expected a second strategy build, got %d", len(positions.calls))
	}
	if positions.calls[1].placement != position.Left {
		t.Fatalf("rebuilt with %v, want %v", positions.calls[1].placement, position.Left)
	}
	if !host.surfaces[0].disposed {
		t.Fatalf("expected the old surface disposed")
	}
	if len(host.surfaces) != 2 || !host.surfaces[1].attached {
		t.Fatalf("expected the hint re-shown on a fresh surface")
	}
	if c.ref.Placement() != position.Left {
		t.Fatalf("rendered placement = %v, want %v", c.ref.Placement(), position.Left)
	}
}

func TestSetPlacementWhileHiddenDefersRebuildEffects(t *testing.T) {
	c, host, positions, _ := newTestCoordinator(t)

	c.SetPlacement(position.Bottom)
	if len(host.surfaces) != 0 {
		t.Fatalf("SetPlacement while hidden created a surface")
	}
	if positions.calls[1].placement != position.Bottom {
		t.Fatalf("rebuilt with %v, want %v", positions.calls[1].placement, position.Bottom)
	}

	c.Show()
	if !c.Shown() {
		t.Fatalf("expected show to work after a hidden placement change")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	c, _, positions, _ := newTestCoordinator(t)

	if err := c.Start(); err != nil {
		t.Fatalf("second Start errored: %v", err)
	}
	if len(positions.calls) != 1 {
		t.Fatalf("second Start rebuilt strategies: %d builds", len(positions.calls))
	}
}

func TestStartWithoutSurfaceHostFails(t *testing.T) {
	c := New(nil, "host", hostAt(hintbox.Rect{}))
	if err := c.Start(); err == nil {
		t.Fatalf("expected Start without a surface host to fail")
	}
}
