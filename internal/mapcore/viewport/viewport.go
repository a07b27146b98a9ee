// Package viewport animates the visible map rectangle between the full map
// and a selected region.
package viewport

import (
	"math"
	"time"

	"prepmap/internal/domain/entity"
)

// State is the phase of the animator.
type State int

const (
	// AtRest shows the full map.
	AtRest State = iota
	// Transitioning is interpolating towards a target.
	Transitioning
	// Settled shows the target exactly.
	Settled
)

func (s State) String() string {
	switch s {
	case AtRest:
		return "at_rest"
	case Transitioning:
		return "transitioning"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Target pads bound by padding times its extent on each axis, split evenly
// between both sides, and clamps the top-left corner to the map origin.
// It reports false when bound has no usable extent, in which case the full
// view is returned.
func Target(bound, full entity.Rect, padding float64) (entity.Rect, bool) {
	if bound.Degenerate() || math.IsNaN(padding) || math.IsInf(padding, 0) || padding < 0 {
		return full, false
	}

	padX := bound.Width * padding
	padY := bound.Height * padding

	return entity.Rect{
		X:      math.Max(0, bound.X-padX/2),
		Y:      math.Max(0, bound.Y-padY/2),
		Width:  bound.Width + padX,
		Height: bound.Height + padY,
	}, true
}

// Ease is the cubic ease-out curve 1-(1-t)^3, clamped to [0, 1].
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t

	return 1 - u*u*u
}

// Lerp interpolates every rectangle parameter independently.
func Lerp(a, b entity.Rect, t float64) entity.Rect {
	return entity.Rect{
		X:      a.X + (b.X-a.X)*t,
		Y:      a.Y + (b.Y-a.Y)*t,
		Width:  a.Width + (b.Width-a.Width)*t,
		Height: a.Height + (b.Height-a.Height)*t,
	}
}

// Plan describes a transition for clients that animate on their own.
type Plan struct {
	From     entity.Rect   `json:"from"`
	To       entity.Rect   `json:"to"`
	Duration time.Duration `json:"-"`
	Millis   int64         `json:"duration_ms"`
	Animated bool          `json:"animated"`
}

// PlanFor computes the transition the Animator would run for bound.
func PlanFor(bound, full entity.Rect, cfg Config) Plan {
	to, ok := Target(bound, full, cfg.Padding)
	if !ok || cfg.Duration <= 0 {
		return Plan{From: full, To: to}
	}

	return Plan{From: full, To: to, Duration: cfg.Duration, Millis: cfg.Duration.Milliseconds(), Animated: true}
}
