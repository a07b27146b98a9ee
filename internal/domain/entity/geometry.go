package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Rect is an axis-aligned rectangle in map-local units.
// It is used both for region bounding boxes and for the visible viewport (viewBox).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromBound converts an orb bound into a Rect.
func RectFromBound(b orb.Bound) Rect {
	return Rect{
		X:      b.Min[0],
		Y:      b.Min[1],
		Width:  b.Max[0] - b.Min[0],
		Height: b.Max[1] - b.Min[1],
	}
}

// Bound converts the rectangle back into an orb bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.Width, r.Y + r.Height},
	}
}

// Degenerate reports whether the rectangle has no usable extent.
func (r Rect) Degenerate() bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}

	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Distance is the Euclidean distance between the parameter vectors of two rectangles.
func (r Rect) Distance(o Rect) float64 {
	dx := r.X - o.X
	dy := r.Y - o.Y
	dw := r.Width - o.Width
	dh := r.Height - o.Height

	return math.Sqrt(dx*dx + dy*dy + dw*dw + dh*dh)
}

// ViewBox formats the rectangle as an SVG viewBox attribute value.
func (r Rect) ViewBox() string {
	return formatFloat(r.X) + " " + formatFloat(r.Y) + " " + formatFloat(r.Width) + " " + formatFloat(r.Height)
}
