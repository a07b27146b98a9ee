// Package label places facility labels next to their map markers so that no
// two labels overlap, when the space allows it.
package label

import (
	"cmp"
	"slices"

	"prepmap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Footprint is the size reserved for every label.
type Footprint struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Item is one facility to label: its geographic position decides the placement
// order, its projected point decides where the label goes.
type Item struct {
	FacilityID int64
	Lat        float64
	Lng        float64
	Point      orb.Point
}

// ItemFor builds an Item from a facility and its projected point.
func ItemFor(f *entity.Facility, pt orb.Point) Item {
	return Item{
		FacilityID: f.ID,
		Lat:        f.Coordinates.Lat,
		Lng:        f.Coordinates.Lng,
		Point:      pt,
	}
}

// Placer assigns label positions greedily. It holds no state between calls.
type Placer struct {
	footprint Footprint
	offset    float64
}

// NewPlacer creates a placer with a fixed footprint and marker offset.
func NewPlacer(footprint Footprint, offset float64) *Placer {
	return &Placer{footprint: footprint, offset: offset}
}

// Footprint returns the label size used by the placer.
func (p *Placer) Footprint() Footprint {
	return p.footprint
}

// Offset returns the gap between a marker and its label.
func (p *Placer) Offset() float64 {
	return p.offset
}

type candidate struct {
	x, y   float64
	anchor entity.Anchor
}

// candidates lists the positions around pt in preference order:
// above, below, right, left.
func (p *Placer) candidates(pt orb.Point) [4]candidate {
	x, y := pt[0], pt[1]
	h := p.footprint.Height

	return [4]candidate{
		{x, y - p.offset, entity.AnchorMiddle},
		{x, y + p.offset + h, entity.AnchorMiddle},
		{x + p.offset, y + h/2, entity.AnchorStart},
		{x - p.offset, y + h/2, entity.AnchorEnd},
	}
}

// rect is the area covered by a label whose baseline starts at (c.x, c.y).
func (p *Placer) rect(c candidate) entity.Rect {
	w, h := p.footprint.Width, p.footprint.Height

	left := c.x
	switch c.anchor {
	case entity.AnchorMiddle:
		left = c.x - w/2
	case entity.AnchorEnd:
		left = c.x - w
	case entity.AnchorStart:
	}

	return entity.Rect{X: left, Y: c.y - h, Width: w, Height: h}
}

// Sort orders items north to south, then west to east, then by facility id.
// The result of Place does not depend on the order items are passed in.
func Sort(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		if c := cmp.Compare(b.Lat, a.Lat); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Lng, b.Lng); c != 0 {
			return c
		}

		return cmp.Compare(a.FacilityID, b.FacilityID)
	})
}

// Place returns exactly one placement per item in canonical order. Each label
// takes the first candidate that does not overlap an already placed label;
// when all four collide it falls back to the position above the marker.
func (p *Placer) Place(items []Item) []entity.LabelPlacement {
	ordered := slices.Clone(items)
	Sort(ordered)

	placed := make([]entity.Rect, 0, len(ordered))
	out := make([]entity.LabelPlacement, 0, len(ordered))

	for _, item := range ordered {
		cands := p.candidates(item.Point)

		chosen := cands[0]
		collided := true
		for _, c := range cands {
			r := p.rect(c)
			if !overlapsAny(r, placed) {
				chosen = c
				collided = false

				break
			}
		}

		placed = append(placed, p.rect(chosen))
		out = append(out, entity.LabelPlacement{
			FacilityID: item.FacilityID,
			X:          chosen.x,
			Y:          chosen.y,
			Anchor:     chosen.anchor,
			Collided:   collided,
		})
	}

	return out
}

// Rect returns the area covered by a placement.
func (p *Placer) Rect(l entity.LabelPlacement) entity.Rect {
	return p.rect(candidate{x: l.X, y: l.Y, anchor: l.Anchor})
}

func overlapsAny(r entity.Rect, placed []entity.Rect) bool {
	for _, other := range placed {
		if r.Overlaps(other) {
			return true
		}
	}

	return false
}
