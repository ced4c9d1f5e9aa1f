// Package hintbox provides tooltip-style hint overlays for bubbletea
// terminal applications.
//
// The package itself holds the small shared vocabulary (cell geometry and
// subscription handles); the actual machinery lives in the subpackages:
// position computes placement, trigger turns input into show/hide signals,
// overlay composites floating surfaces over a base frame, hint renders the
// floating box, and tooltip wires all of them together.
package hintbox

// Point is a cell coordinate on the terminal grid. X grows rightwards,
// Y grows downwards, both zero-based.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned cell rectangle anchored at its top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Subscription is a handle to a registered listener. Cancelling it removes
// the listener; cancelling twice is harmless.
type Subscription struct {
	cancel func()
}

// NewSubscription wraps a cancel function into a Subscription.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Cancel removes the listener behind this subscription.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}
