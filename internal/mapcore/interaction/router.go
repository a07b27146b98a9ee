// Package interaction turns raw pointer events on the map container into
// region-level events.
package interaction

import (
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/svgpath"

	"github.com/paulmach/orb"
)

// PointerKind is the physical pointer action.
type PointerKind string

const (
	PointerClick PointerKind = "click"
	PointerMove  PointerKind = "move"
	PointerLeave PointerKind = "leave"
)

// PointerEvent is delivered once per physical pointer event on the container.
// Target is the scene node under the pointer when the client knows it; Point
// is the pointer position in map space. Target takes precedence.
type PointerEvent struct {
	Kind    PointerKind `json:"kind"`
	Target  *int        `json:"target,omitempty"`
	Point   *orb.Point  `json:"point,omitempty"`
	ScreenX float64     `json:"screenX"`
	ScreenY float64     `json:"screenY"`
}

// EventType is the logical outcome of a pointer event.
type EventType string

const (
	EventNone          EventType = "none"
	EventRegionClicked EventType = "region_clicked"
	EventRegionHovered EventType = "region_hovered"
	EventHoverCleared  EventType = "hover_cleared"
)

// Event is what the router reports upwards.
type Event struct {
	Type        EventType     `json:"type"`
	RegionID    string        `json:"regionId,omitempty"`
	DisplayName string        `json:"displayName,omitempty"`
	Path        *svgpath.Path `json:"-"`
	ScreenX     float64       `json:"screenX,omitempty"`
	ScreenY     float64       `json:"screenY,omitempty"`
}

// Resolver finds the region behind a scene node or a map-space point.
type Resolver interface {
	ResolveNode(id int) (*region.Region, bool)
	HitTest(pt orb.Point) (*region.Region, bool)
}

// Router delegates pointer events to regions. It keeps track of the hovered
// region so that leaving it can be reported; it is not safe for concurrent use.
type Router struct {
	resolver Resolver
	hovered  string
}

// NewRouter creates a router with nothing hovered.
func NewRouter(resolver Resolver) *Router {
	return &Router{resolver: resolver}
}

// Hovered returns the id of the hovered region, or "" when none.
func (r *Router) Hovered() string {
	return r.hovered
}

// Handle maps a pointer event to exactly one logical event.
func (r *Router) Handle(ev PointerEvent) Event {
	switch ev.Kind {
	case PointerClick:
		reg, ok := r.resolve(ev)
		if !ok {
			return Event{Type: EventNone}
		}

		return Event{
			Type:        EventRegionClicked,
			RegionID:    reg.ID,
			DisplayName: reg.DisplayName,
			Path:        reg.Path,
		}
	case PointerMove:
		reg, ok := r.resolve(ev)
		if !ok {
			return r.clear()
		}
		r.hovered = reg.ID

		return Event{
			Type:        EventRegionHovered,
			RegionID:    reg.ID,
			DisplayName: reg.DisplayName,
			ScreenX:     ev.ScreenX,
			ScreenY:     ev.ScreenY,
		}
	case PointerLeave:
		return r.clear()
	default:
		return Event{Type: EventNone}
	}
}

func (r *Router) clear() Event {
	if r.hovered == "" {
		return Event{Type: EventNone}
	}
	r.hovered = ""

	return Event{Type: EventHoverCleared}
}

func (r *Router) resolve(ev PointerEvent) (*region.Region, bool) {
	switch {
	case ev.Target != nil:
		return r.resolver.ResolveNode(*ev.Target)
	case ev.Point != nil:
		return r.resolver.HitTest(*ev.Point)
	default:
		return nil, false
	}
}
