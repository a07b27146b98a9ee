package service

import (
	"context"

	"prepmap/internal/mapcore/scene"
)

// MapSource provides the scene graph built from the geometry source.
type MapSource interface {
	// Graph returns the shared, read-only scene graph. Implementations load
	// the geometry at most once.
	Graph(ctx context.Context) (*scene.Graph, error)
}
