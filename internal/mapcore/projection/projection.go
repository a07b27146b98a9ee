// Package projection maps geographic coordinates onto the map's local
// coordinate space with a single linear (equirectangular) transform.
package projection

import (
	"math"

	"prepmap/internal/errors"

	"github.com/paulmach/orb"
)

// GeoBounds is the geographic extent covered by the map image.
type GeoBounds struct {
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
	MinLng float64 `json:"minLng" yaml:"minLng"`
	MaxLng float64 `json:"maxLng" yaml:"maxLng"`
}

// Projector converts lat/lng into map-local x/y. y grows downwards.
type Projector struct {
	bounds GeoBounds
	width  float64
	height float64
}

// New validates the bounds and map size.
func New(bounds GeoBounds, width, height float64) (*Projector, error) {
	for _, v := range []float64{bounds.MinLat, bounds.MaxLat, bounds.MinLng, bounds.MaxLng, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("projection parameters must be finite")
		}
	}
	if bounds.MaxLat <= bounds.MinLat || bounds.MaxLng <= bounds.MinLng {
		return nil, errors.Errorf("invalid geographic bounds %+v", bounds)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid map size %gx%g", width, height)
	}

	return &Projector{bounds: bounds, width: width, height: height}, nil
}

// Project maps a coordinate. Points outside the bounds are not clamped and
// land outside the map rectangle.
func (p *Projector) Project(lat, lng float64) orb.Point {
	b := p.bounds
	x := (lng - b.MinLng) / (b.MaxLng - b.MinLng) * p.width
	y := (b.MaxLat - lat) / (b.MaxLat - b.MinLat) * p.height

	return orb.Point{x, y}
}

// Size returns the map width and height.
func (p *Projector) Size() (float64, float64) {
	return p.width, p.height
}

// Bounds returns the configured geographic extent.
func (p *Projector) Bounds() GeoBounds {
	return p.bounds
}
