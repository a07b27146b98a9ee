package session

import (
	"context"
	"log/slog"

	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/interaction"
	"prepmap/internal/mapcore/overlay"
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/scene"
	"prepmap/internal/mapcore/viewport"
)

// FacilityFinder is the facility directory as seen by a session.
type FacilityFinder interface {
	FindByRegion(ctx context.Context, regionID string) ([]*entity.Facility, error)
}

// Deps are the shared, read-only collaborators of every session.
type Deps struct {
	Graph    *scene.Graph
	Overlay  *overlay.Overlay
	Finder   FacilityFinder
	Viewport viewport.Config
	Logger   *slog.Logger

	// Clock and Scheduler default to the wall clock and the session loop.
	Clock     viewport.Clock
	Scheduler viewport.Scheduler
}

// Session is the state of one connected client. All fields are owned by the
// loop goroutine; other goroutines interact only through Dispatch.
type Session struct {
	deps     Deps
	loop     *Loop
	send     func(Message)
	router   *interaction.Router
	animator *viewport.Animator
	logger   *slog.Logger

	ctx context.Context

	// seq identifies the current selection; results of older fetches are dropped.
	seq         uint64
	selected    *region.Region
	cancelFetch context.CancelFunc
	facilities  []*entity.Facility
	arrived     bool
	pinsSent    bool
}

// New creates a session bound to ctx that pushes its messages through send.
// send is called on the loop goroutine and must not block. The ready message
// is queued before any client message can be dispatched.
func New(ctx context.Context, deps Deps, send func(Message)) *Session {
	loop := NewLoop()
	clock := deps.Clock
	if clock == nil {
		clock = viewport.SystemClock{}
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = NewScheduler(loop)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		deps:     deps,
		loop:     loop,
		send:     send,
		router:   interaction.NewRouter(deps.Graph),
		animator: viewport.NewAnimator(deps.Graph.Full(), deps.Viewport, clock, sched),
		logger:   logger,
		ctx:      ctx,
	}
	s.animator.OnFrame(s.onFrame)
	s.animator.OnSettled(s.onSettled)

	full := deps.Graph.Full()
	loop.Post(func() {
		s.send(Message{Type: OutReady, Bound: &full})
	})

	return s
}

// Loop exposes the session's event loop.
func (s *Session) Loop() *Loop {
	return s.loop
}

// Run processes events until ctx is done.
func (s *Session) Run(ctx context.Context) {
	s.loop.Run(ctx)

	if s.cancelFetch != nil {
		s.cancelFetch()
	}
}

// Dispatch queues a client message for the loop. It reports false after the
// session has stopped.
func (s *Session) Dispatch(in Inbound) bool {
	return s.loop.Post(func() { s.handle(in) })
}

func (s *Session) handle(in Inbound) {
	switch in.Type {
	case InPointer:
		if in.Pointer == nil {
			s.send(Message{Type: OutError, Error: "pointer message without event"})

			return
		}
		s.handlePointer(*in.Pointer)
	case InSelect:
		r, ok := s.deps.Graph.Index().Lookup(in.RegionID)
		if !ok {
			s.send(Message{Type: OutError, RegionID: in.RegionID, Error: "unknown region"})

			return
		}
		s.selectRegion(r)
	case InDismiss:
		s.dismiss()
	default:
		s.send(Message{Type: OutError, Error: "unknown message type " + in.Type})
	}
}

func (s *Session) handlePointer(ev interaction.PointerEvent) {
	out := s.router.Handle(ev)
	switch out.Type {
	case interaction.EventRegionClicked:
		if r, ok := s.deps.Graph.Index().Lookup(out.RegionID); ok {
			s.selectRegion(r)
		}
	case interaction.EventRegionHovered:
		s.send(Message{
			Type:        OutRegionHovered,
			RegionID:    out.RegionID,
			DisplayName: out.DisplayName,
			ScreenX:     out.ScreenX,
			ScreenY:     out.ScreenY,
		})
	case interaction.EventHoverCleared:
		s.send(Message{Type: OutHoverCleared})
	case interaction.EventNone:
	}
}

func (s *Session) selectRegion(r *region.Region) {
	s.reset()
	s.seq++
	s.selected = r
	seq := s.seq

	bound, err := r.Bound()
	if err != nil {
		s.logger.Warn("region has no usable bounds, showing full map",
			slog.String("region", r.ID),
			slog.Any("error", err),
		)
	}

	var d string
	if r.Path != nil {
		d = r.Path.D()
	}
	s.send(Message{Type: OutRegionSelected, Seq: seq, RegionID: r.ID, DisplayName: r.DisplayName, Path: d, Bound: &bound})
	s.send(Message{Type: OutFacilitiesLoading, Seq: seq, RegionID: r.ID})

	ctx, cancel := context.WithCancel(s.ctx)
	s.cancelFetch = cancel
	go func() {
		list, err := s.deps.Finder.FindByRegion(ctx, r.ID)
		s.loop.Post(func() { s.onFacilities(seq, list, err) })
	}()

	s.animator.Select(bound)
}

func (s *Session) dismiss() {
	s.reset()
	s.seq++
	s.selected = nil
	s.animator.Dismiss()
	s.send(Message{Type: OutDismissed, Seq: s.seq})
}

// reset withdraws the running fetch and forgets its results.
func (s *Session) reset() {
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.facilities = nil
	s.arrived = false
	s.pinsSent = false
}

func (s *Session) onFacilities(seq uint64, list []*entity.Facility, err error) {
	if seq != s.seq || s.selected == nil {
		return
	}
	s.cancelFetch = nil

	degraded := false
	if err != nil {
		s.logger.Error("failed to fetch facilities",
			slog.String("region", s.selected.ID),
			slog.Any("error", err),
		)
		list = nil
		degraded = true
	}

	s.facilities = list
	s.arrived = true
	s.send(Message{Type: OutFacilities, Seq: seq, RegionID: s.selected.ID, Facilities: list, Degraded: degraded})
	s.releasePins()
}

func (s *Session) onFrame(f viewport.Frame) {
	s.send(Message{Type: OutViewport, Seq: s.seq, Viewport: &f})
}

func (s *Session) onSettled(entity.Rect) {
	s.releasePins()
}

// releasePins emits the pins once both the viewport has settled and the
// facility list has arrived, in whichever order those happen.
func (s *Session) releasePins() {
	if s.pinsSent || !s.arrived || s.selected == nil || s.animator.State() != viewport.Settled {
		return
	}
	s.pinsSent = true

	s.send(Message{
		Type:     OutPins,
		Seq:      s.seq,
		RegionID: s.selected.ID,
		Pins:     s.deps.Overlay.Pins(s.facilities),
	})
}
