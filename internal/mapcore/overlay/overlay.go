// Package overlay turns a facility list into projected, labelled pins.
package overlay

import (
	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/label"
	"prepmap/internal/mapcore/projection"
)

// Overlay combines the projector and the label placer.
type Overlay struct {
	projector *projection.Projector
	placer    *label.Placer
	fontSize  float64
}

// New creates an overlay.
func New(projector *projection.Projector, placer *label.Placer) *Overlay {
	return &Overlay{projector: projector, placer: placer}
}

// WithAutoWidth sizes labels from the widest facility name of each list at
// fontSize whenever the placer's footprint has no width.
func (o *Overlay) WithAutoWidth(fontSize float64) *Overlay {
	cp := *o
	cp.fontSize = fontSize

	return &cp
}

// placerFor returns the placer for one facility list. A failed measurement
// keeps the configured placer.
func (o *Overlay) placerFor(facilities []*entity.Facility) *label.Placer {
	if o.fontSize <= 0 || o.placer.Footprint().Width > 0 {
		return o.placer
	}

	names := make([]string, 0, len(facilities))
	for _, f := range facilities {
		if f != nil {
			names = append(names, f.Name)
		}
	}
	fp, err := label.EstimateFootprint(names, o.fontSize)
	if err != nil {
		return o.placer
	}
	if h := o.placer.Footprint().Height; h > fp.Height {
		fp.Height = h
	}

	return label.NewPlacer(fp, o.placer.Offset())
}

// Projector returns the coordinate projector.
func (o *Overlay) Projector() *projection.Projector {
	return o.projector
}

// Pins projects every facility and places all labels together. Pins come back
// in the placer's canonical order, one per facility.
func (o *Overlay) Pins(facilities []*entity.Facility) []entity.Pin {
	byID := make(map[int64]*entity.Facility, len(facilities))
	items := make([]label.Item, 0, len(facilities))
	for _, f := range facilities {
		if f == nil {
			continue
		}
		pt := o.projector.Project(f.Coordinates.Lat, f.Coordinates.Lng)
		byID[f.ID] = f
		items = append(items, label.ItemFor(f, pt))
	}

	points := make(map[int64][2]float64, len(items))
	for _, it := range items {
		points[it.FacilityID] = it.Point
	}

	placements := o.placerFor(facilities).Place(items)
	pins := make([]entity.Pin, 0, len(placements))
	for _, l := range placements {
		pt := points[l.FacilityID]
		pins = append(pins, entity.Pin{
			Facility: byID[l.FacilityID],
			X:        pt[0],
			Y:        pt[1],
			Label:    l,
		})
	}

	return pins
}
