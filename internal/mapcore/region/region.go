// Package region maps geometry-source paths to stable region identities.
package region

import (
	"sync"

	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/svgpath"
)

// Region is one closed-curve path of the map together with its identity.
// Render-only regions carry an empty ID and never take part in selection.
type Region struct {
	ID          string
	DisplayName string
	Ordinal     int
	PathID      string
	Path        *svgpath.Path

	boundOnce sync.Once
	bound     entity.Rect
	boundErr  error
}

// Selectable reports whether the region has an identity.
func (r *Region) Selectable() bool {
	return r.ID != ""
}

// Bound returns the bounding box of the region's geometry. It is computed on
// first use and cached, so repeated calls are cheap and safe for concurrent use.
func (r *Region) Bound() (entity.Rect, error) {
	r.boundOnce.Do(func() {
		b, err := r.Path.Bound()
		if err != nil {
			r.boundErr = err

			return
		}
		r.bound = entity.RectFromBound(b)
	})

	return r.bound, r.boundErr
}
