package tooltip

import (
	"github.com/javiermolinar/hintbox"
	"github.com/javiermolinar/hintbox/overlay"
	"github.com/javiermolinar/hintbox/position"
	"github.com/javiermolinar/hintbox/trigger"
)

// PositionStrategy is the slice of a placement engine the coordinator
// consumes: placing content (via overlay.Positioner), reporting the
// effective side, and notifying when it changes.
type PositionStrategy interface {
	overlay.Positioner
	Effective() position.Placement
	OnChange(fn func(position.Placement)) *hintbox.Subscription
}

// PositionProvider builds a position strategy for a host element.
type PositionProvider interface {
	Strategy(host func() hintbox.Rect, placement position.Placement, adjustment position.Adjustment, offset int) PositionStrategy
}

// TriggerProvider builds a trigger strategy for a host element. The
// container supplier returns the rendered hint's rectangle, or an empty
// rect while nothing is shown.
type TriggerProvider interface {
	Strategy(mode trigger.Mode, hostID string, host, container func() hintbox.Rect) trigger.Strategy
}

// Surface is one floating overlay surface as the coordinator sees it.
// *overlay.Handle satisfies it.
type Surface interface {
	Attach(view string)
	SetView(view string)
	Detach()
	Dispose()
	HasAttached() bool
	Bounds() hintbox.Rect
}

// SurfaceHost creates overlay surfaces.
type SurfaceHost interface {
	Create(cfg overlay.Config) Surface
}

// HostSurfaces adapts an *overlay.Host to the SurfaceHost interface.
func HostSurfaces(h *overlay.Host) SurfaceHost {
	return hostSurfaces{host: h}
}

type hostSurfaces struct {
	host *overlay.Host
}

func (s hostSurfaces) Create(cfg overlay.Config) Surface {
	return s.host.Create(cfg)
}

// positionProvider is the default placement engine, backed by
// position.Builder.
type positionProvider struct{}

func (positionProvider) Strategy(host func() hintbox.Rect, placement position.Placement, adjustment position.Adjustment, offset int) PositionStrategy {
	return position.NewBuilder().
		ConnectedTo(host).
		Position(placement).
		Adjustment(adjustment).
		Offset(offset).
		Build()
}

// triggerProvider is the default interaction detector, backed by
// trigger.Builder.
type triggerProvider struct{}

func (triggerProvider) Strategy(mode trigger.Mode, hostID string, host, container func() hintbox.Rect) trigger.Strategy {
	return trigger.NewBuilder().
		Trigger(mode).
		HostID(hostID).
		Host(host).
		Container(container).
		Build()
}
