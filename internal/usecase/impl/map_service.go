package impl

import (
	"context"
	"io"
	"log/slog"

	"prepmap/config"
	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/repository"
	"prepmap/internal/domain/service"
	"prepmap/internal/errors"
	"prepmap/internal/infra/metrics"
	"prepmap/internal/mapcore/label"
	"prepmap/internal/mapcore/overlay"
	"prepmap/internal/mapcore/projection"
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/scene"
	"prepmap/internal/mapcore/session"
	"prepmap/internal/mapcore/viewport"
	"prepmap/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// MapServiceParams holds dependencies for the map service
type MapServiceParams struct {
	fx.In

	Config     *config.Config
	Source     service.MapSource
	Facilities repository.FacilityRepository
	Logger     *slog.Logger
	Metrics    *metrics.Collector `optional:"true"`
}

type mapService struct {
	source     service.MapSource
	facilities repository.FacilityRepository
	overlay    *overlay.Overlay
	viewport   viewport.Config
	fontSize   float64
	logger     *slog.Logger
	metrics    *metrics.Collector
}

// NewMapService creates the map service. The projector is built eagerly so
// that bad bounds stop startup; the geometry is loaded on first use.
func NewMapService(params MapServiceParams) (usecase.MapUsecase, error) {
	cfg := params.Config.Map

	projector, err := projection.New(cfg.Bounds, cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "invalid map projection")
	}
	placer := label.NewPlacer(label.Footprint{Width: cfg.Labels.Width, Height: cfg.Labels.Height}, cfg.Labels.Offset)

	return &mapService{
		source:     params.Source,
		facilities: params.Facilities,
		overlay:    overlay.New(projector, placer).WithAutoWidth(cfg.Labels.FontSize),
		viewport:   cfg.Viewport,
		fontSize:   cfg.Labels.FontSize,
		logger:     params.Logger,
		metrics:    params.Metrics,
	}, nil
}

// ListRegions returns every selectable region in geometry order
func (s *mapService) ListRegions(ctx context.Context) ([]usecase.RegionSummary, error) {
	g, err := s.graph(ctx)
	if err != nil {
		return nil, err
	}

	regions := g.Index().Regions()
	out := make([]usecase.RegionSummary, 0, len(regions))
	for _, r := range regions {
		out = append(out, summarize(r))
	}

	return out, nil
}

// GetRegion resolves a region, its viewport plan and its labelled facilities.
// A facility directory failure yields an empty, degraded list.
func (s *mapService) GetRegion(ctx context.Context, regionID string) (*usecase.RegionDetail, error) {
	g, r, err := s.lookup(ctx, regionID)
	if err != nil {
		return nil, err
	}

	facilities, degraded := s.fetch(ctx, r.ID)

	return &usecase.RegionDetail{
		Region:     summarize(r),
		Viewport:   s.plan(g, r),
		Facilities: facilities,
		Pins:       s.overlay.Pins(facilities),
		Degraded:   degraded,
	}, nil
}

// HitTest returns the region under the map-space point, or nil for the background
func (s *mapService) HitTest(ctx context.Context, x, y float64) (*usecase.RegionSummary, error) {
	g, err := s.graph(ctx)
	if err != nil {
		return nil, err
	}

	r, ok := g.HitTest(orb.Point{x, y})
	if !ok {
		return nil, nil
	}
	summary := summarize(r)

	return &summary, nil
}

// RenderMap writes the full map with activeID styled as active
func (s *mapService) RenderMap(ctx context.Context, w io.Writer, activeID string) error {
	g, err := s.graph(ctx)
	if err != nil {
		return err
	}

	return g.RenderMap(w, g.Index().WithActive(activeID))
}

// RenderRegion writes the region alone, zoomed to its settled viewport, with pins and labels
func (s *mapService) RenderRegion(ctx context.Context, w io.Writer, regionID string) error {
	g, r, err := s.lookup(ctx, regionID)
	if err != nil {
		return err
	}

	facilities, _ := s.fetch(ctx, r.ID)
	view := g.NewRegionView(r, s.plan(g, r).To, s.overlay.Pins(facilities))

	return g.RenderRegionView(w, view, scene.RenderOptions{FontSize: s.fontSize})
}

// NewSession creates an interactive session sharing the graph and overlay
func (s *mapService) NewSession(ctx context.Context, send func(session.Message)) (*session.Session, error) {
	g, err := s.graph(ctx)
	if err != nil {
		return nil, err
	}

	return session.New(ctx, session.Deps{
		Graph:    g,
		Overlay:  s.overlay,
		Finder:   &countingFinder{next: s.facilities, metrics: s.metrics},
		Viewport: s.viewport,
		Logger:   s.logger,
	}, send), nil
}

func (s *mapService) graph(ctx context.Context) (*scene.Graph, error) {
	g, err := s.source.Graph(ctx)
	if err != nil {
		return nil, domainerrors.ErrMapUnavailable.WithDetails(err.Error())
	}

	return g, nil
}

func (s *mapService) lookup(ctx context.Context, regionID string) (*scene.Graph, *region.Region, error) {
	g, err := s.graph(ctx)
	if err != nil {
		return nil, nil, err
	}

	r, ok := g.Index().Lookup(regionID)
	if !ok {
		return nil, nil, domainerrors.ErrRegionNotFound.WithDetails("unknown region " + regionID)
	}

	return g, r, nil
}

// plan targets the padded region bound; an unusable bound plans the full view.
func (s *mapService) plan(g *scene.Graph, r *region.Region) viewport.Plan {
	bound, err := r.Bound()
	if err != nil {
		s.logger.Warn("Region has no usable bounding box",
			slog.String("region", r.ID),
			slog.Any("error", err),
		)
	}

	return viewport.PlanFor(bound, g.Full(), s.viewport)
}

func (s *mapService) fetch(ctx context.Context, regionID string) ([]*entity.Facility, bool) {
	facilities, err := s.facilities.FindByRegion(ctx, regionID)
	if err != nil {
		s.metrics.IncFetchFailure("http")
		s.logger.ErrorContext(ctx, "Failed to fetch facilities",
			slog.String("region", regionID),
			slog.Any("error", err),
		)

		return []*entity.Facility{}, true
	}

	return facilities, false
}

func summarize(r *region.Region) usecase.RegionSummary {
	summary := usecase.RegionSummary{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		Ordinal:     r.Ordinal,
	}
	if bound, err := r.Bound(); err == nil {
		summary.Bound = &bound
	}

	return summary
}

// countingFinder counts session-side directory failures; the session itself
// logs them and degrades to an empty list.
type countingFinder struct {
	next    repository.FacilityRepository
	metrics *metrics.Collector
}

func (f *countingFinder) FindByRegion(ctx context.Context, regionID string) ([]*entity.Facility, error) {
	facilities, err := f.next.FindByRegion(ctx, regionID)
	if err != nil {
		f.metrics.IncFetchFailure("session")
	}

	return facilities, err
}
