package viewport

import (
	"time"

	"prepmap/internal/domain/entity"
)

// CancelFunc withdraws a scheduled step. Calling it more than once is allowed.
type CancelFunc func()

// Scheduler runs fn once after d. Implementations must invoke fn on the same
// goroutine that drives the Animator.
type Scheduler interface {
	After(d time.Duration, fn func()) CancelFunc
}

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Config controls the transition.
type Config struct {
	Duration      time.Duration `json:"duration" yaml:"duration"`
	FrameInterval time.Duration `json:"frameInterval" yaml:"frameInterval"`
	Padding       float64       `json:"padding" yaml:"padding"`
}

// Frame is one applied viewport.
type Frame struct {
	Rect     entity.Rect `json:"rect"`
	Progress float64     `json:"progress"`
	State    State       `json:"state"`
}

// Animator owns the viewport state. It is not safe for concurrent use: every
// method and every scheduled step runs on the owner's goroutine.
type Animator struct {
	full  entity.Rect
	cfg   Config
	clock Clock
	sched Scheduler

	state   State
	current entity.Rect
	start   entity.Rect
	end     entity.Rect
	began   time.Time

	// token identifies the transition a scheduled step belongs to.
	token  uint64
	cancel CancelFunc

	onFrame   func(Frame)
	onSettled func(entity.Rect)
}

// NewAnimator creates an animator at rest on the full map.
func NewAnimator(full entity.Rect, cfg Config, clock Clock, sched Scheduler) *Animator {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 16 * time.Millisecond
	}

	return &Animator{
		full:    full,
		cfg:     cfg,
		clock:   clock,
		sched:   sched,
		state:   AtRest,
		current: full,
	}
}

// OnFrame registers the observer for applied frames.
func (a *Animator) OnFrame(fn func(Frame)) {
	a.onFrame = fn
}

// OnSettled registers the observer called once when a transition completes.
func (a *Animator) OnSettled(fn func(entity.Rect)) {
	a.onSettled = fn
}

// State returns the current phase.
func (a *Animator) State() State {
	return a.state
}

// Current returns the viewport as last applied.
func (a *Animator) Current() entity.Rect {
	return a.current
}

// Target returns the rectangle the current transition ends at.
func (a *Animator) Target() entity.Rect {
	if a.state == AtRest {
		return a.full
	}

	return a.end
}

// Select starts a transition from the full map towards bound. A running
// transition is withdrawn first and never applies another frame. A degenerate
// bound settles on the full map without animating.
func (a *Animator) Select(bound entity.Rect) {
	a.withdraw()
	a.state = AtRest
	a.current = a.full

	target, ok := Target(bound, a.full, a.cfg.Padding)
	if !ok || a.cfg.Duration <= 0 {
		a.start = a.full
		a.end = target
		a.settle()

		return
	}

	a.start = a.full
	a.end = target
	a.began = a.clock.Now()
	a.state = Transitioning
	a.emit(0)

	token := a.token
	a.cancel = a.sched.After(a.cfg.FrameInterval, func() { a.step(token) })
}

// Dismiss withdraws any transition and returns to the full map.
func (a *Animator) Dismiss() {
	a.withdraw()
	a.state = AtRest
	a.current = a.full
	a.emit(0)
}

func (a *Animator) withdraw() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.token++
}

func (a *Animator) step(token uint64) {
	if token != a.token || a.state != Transitioning {
		return
	}
	a.cancel = nil

	t := float64(a.clock.Now().Sub(a.began)) / float64(a.cfg.Duration)
	if t >= 1 {
		a.settle()

		return
	}

	a.current = Lerp(a.start, a.end, Ease(t))
	a.emit(t)
	a.cancel = a.sched.After(a.cfg.FrameInterval, func() { a.step(token) })
}

func (a *Animator) settle() {
	a.current = a.end
	a.state = Settled
	a.emit(1)
	if a.onSettled != nil {
		a.onSettled(a.end)
	}
}

func (a *Animator) emit(progress float64) {
	if a.onFrame != nil {
		a.onFrame(Frame{Rect: a.current, Progress: progress, State: a.state})
	}
}
