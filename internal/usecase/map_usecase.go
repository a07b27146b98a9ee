package usecase

import (
	"context"
	"io"

	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/session"
	"prepmap/internal/mapcore/viewport"
)

// RegionSummary is a selectable region.
type RegionSummary struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"display_name"`
	Ordinal     int          `json:"ordinal"`
	Bound       *entity.Rect `json:"bound,omitempty"`
}

// RegionDetail is everything a client needs to show a selected region.
type RegionDetail struct {
	Region     RegionSummary      `json:"region"`
	Viewport   viewport.Plan      `json:"viewport"`
	Facilities []*entity.Facility `json:"facilities"`
	Pins       []entity.Pin       `json:"pins"`
	// Degraded is set when the facility directory failed and the list was emptied.
	Degraded bool `json:"degraded"`
}

// MapUsecase defines the interface for the map and region selection use cases
type MapUsecase interface {
	ListRegions(ctx context.Context) ([]RegionSummary, error)
	GetRegion(ctx context.Context, regionID string) (*RegionDetail, error)
	HitTest(ctx context.Context, x, y float64) (*RegionSummary, error)

	// Rendering writes SVG documents.
	RenderMap(ctx context.Context, w io.Writer, activeID string) error
	RenderRegion(ctx context.Context, w io.Writer, regionID string) error

	// NewSession creates an interactive session that pushes its messages through send.
	NewSession(ctx context.Context, send func(session.Message)) (*session.Session, error)
}
