// Package session runs one interactive map session: a single event loop that
// owns the hover state, the viewport animator and the current selection.
package session

import (
	"context"
	"sync"
	"time"

	"prepmap/internal/mapcore/viewport"
)

// Loop runs posted closures one at a time, in order, on the goroutine that
// called Run. Handlers must not block.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. It is safe to call from any goroutine, including from a
// running handler. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()

		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return true
}

// Run processes the queue until ctx is done. Pending closures are discarded.
func (l *Loop) Run(ctx context.Context) {
	defer l.close()

	for {
		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			fn()
			if ctx.Err() != nil {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]

	return fn, true
}

func (l *Loop) close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.queue = nil
}

// Scheduler runs delayed steps on the loop.
type Scheduler struct {
	loop *Loop
}

// NewScheduler binds a scheduler to loop.
func NewScheduler(loop *Loop) *Scheduler {
	return &Scheduler{loop: loop}
}

// After posts fn to the loop once d has elapsed. Cancelling stops the timer;
// a step that was already posted is left to the caller's own staleness check.
func (s *Scheduler) After(d time.Duration, fn func()) viewport.CancelFunc {
	t := time.AfterFunc(d, func() { s.loop.Post(fn) })

	return func() { t.Stop() }
}
