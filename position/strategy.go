package position

import (
	"github.com/javiermolinar/hintbox"
)

// rotation is the clockwise side order. Counterclockwise walks it backwards.
var rotation = [4]Placement{Top, Right, Bottom, Left}

// Builder assembles a Strategy. Zero values follow the tooltip defaults:
// top placement, clockwise adjustment, no offset.
type Builder struct {
	host       func() hintbox.Rect
	placement  Placement
	adjustment Adjustment
	offset     int
}

// NewBuilder returns a Builder with default placement Top and clockwise
// adjustment.
func NewBuilder() *Builder {
	return &Builder{
		placement:  Top,
		adjustment: Clockwise,
	}
}

// ConnectedTo sets the supplier for the host element rectangle. A supplier
// is used instead of a fixed rect so layout changes are picked up on every
// placement pass.
func (b *Builder) ConnectedTo(host func() hintbox.Rect) *Builder {
	b.host = host
	return b
}

// Position sets the preferred placement.
func (b *Builder) Position(p Placement) *Builder {
	b.placement = p
	return b
}

// Adjustment sets the viewport-fit rotation policy.
func (b *Builder) Adjustment(a Adjustment) *Builder {
	b.adjustment = a
	return b
}

// Offset sets the gap, in cells, between the host and the hint.
func (b *Builder) Offset(cells int) *Builder {
	b.offset = cells
	return b
}

// Build returns the configured strategy.
func (b *Builder) Build() *Strategy {
	return &Strategy{
		host:       b.host,
		preferred:  b.placement,
		adjustment: b.adjustment,
		offset:     b.offset,
		effective:  b.placement.Resolve(),
		listeners:  make(map[int]func(Placement)),
	}
}

// Strategy places a content box of a given size relative to the host inside
// a viewport. It remembers the last effective placement and notifies
// listeners when a placement pass lands on a different side.
type Strategy struct {
	host       func() hintbox.Rect
	preferred  Placement
	adjustment Adjustment
	offset     int

	effective Placement
	nextID    int
	listeners map[int]func(Placement)
}

// Preferred returns the requested placement.
func (s *Strategy) Preferred() Placement { return s.preferred }

// AdjustmentPolicy returns the configured rotation policy.
func (s *Strategy) AdjustmentPolicy() Adjustment { return s.adjustment }

// Offset returns the host-to-hint gap in cells.
func (s *Strategy) Offset() int { return s.offset }

// Effective returns the placement chosen by the last Place call, or the
// resolved preference before any pass has run.
func (s *Strategy) Effective() Placement { return s.effective }

// OnChange registers a listener invoked whenever the effective placement
// changes. Cancel the returned subscription to stop receiving updates.
func (s *Strategy) OnChange(fn func(Placement)) *hintbox.Subscription {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return hintbox.NewSubscription(func() {
		delete(s.listeners, id)
	})
}

// Place computes the top-left point for a w×h content box. It tries the
// preferred side first, then rotates per the adjustment policy; when no side
// fits, the preferred side is kept and the box is clamped into the viewport.
func (s *Strategy) Place(w, h int, viewport hintbox.Rect) (hintbox.Point, Placement) {
	var host hintbox.Rect
	if s.host != nil {
		host = s.host()
	}

	candidates := s.order()
	chosen := candidates[0]
	pt := anchor(host, w, h, chosen, s.offset)
	for _, cand := range candidates {
		at := anchor(host, w, h, cand, s.offset)
		if fits(at, w, h, viewport) {
			chosen, pt = cand, at
			break
		}
	}
	pt = clamp(pt, w, h, viewport)

	if chosen != s.effective {
		s.effective = chosen
		for _, fn := range s.listeners {
			fn(chosen)
		}
	}
	return pt, chosen
}

// order returns the candidate sides in the order they are attempted.
func (s *Strategy) order() []Placement {
	first := s.preferred.Resolve()
	if s.adjustment == None {
		return []Placement{first}
	}

	start := 0
	for i, p := range rotation {
		if p == first {
			start = i
			break
		}
	}

	step := 1
	if s.adjustment == Counterclockwise {
		step = -1
	}

	out := make([]Placement, 0, len(rotation))
	for i := 0; i < len(rotation); i++ {
		idx := (start + i*step%len(rotation) + len(rotation)) % len(rotation)
		out = append(out, rotation[idx])
	}
	return out
}

// anchor computes the top-left point for the given side, centered along the
// host's other axis.
func anchor(host hintbox.Rect, w, h int, p Placement, offset int) hintbox.Point {
	switch p.Resolve() {
	case Bottom:
		return hintbox.Point{X: host.X + (host.W-w)/2, Y: host.Bottom() + offset}
	case Left:
		return hintbox.Point{X: host.X - w - offset, Y: host.Y + (host.H-h)/2}
	case Right:
		return hintbox.Point{X: host.Right() + offset, Y: host.Y + (host.H-h)/2}
	default: // Top
		return hintbox.Point{X: host.X + (host.W-w)/2, Y: host.Y - h - offset}
	}
}

func fits(at hintbox.Point, w, h int, viewport hintbox.Rect) bool {
	return at.X >= viewport.X && at.Y >= viewport.Y &&
		at.X+w <= viewport.Right() && at.Y+h <= viewport.Bottom()
}

// clamp pulls the box inside the viewport, favoring the top-left edges when
// the box is larger than the viewport.
func clamp(at hintbox.Point, w, h int, viewport hintbox.Rect) hintbox.Point {
	if at.X+w > viewport.Right() {
		at.X = viewport.Right() - w
	}
	if at.Y+h > viewport.Bottom() {
		at.Y = viewport.Bottom() - h
	}
	if at.X < viewport.X {
		at.X = viewport.X
	}
	if at.Y < viewport.Y {
		at.Y = viewport.Y
	}
	return at
}
