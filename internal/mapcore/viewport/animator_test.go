package viewport

import (
	"math"
	"testing"
	"time"

	"prepmap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTask struct {
	due       time.Time
	fn        func()
	cancelled bool
}

// fakeScheduler is a manual clock and timer queue.
type fakeScheduler struct {
	now   time.Time
	tasks []*fakeTask
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeScheduler) Now() time.Time { return f.now }

func (f *fakeScheduler) After(d time.Duration, fn func()) CancelFunc {
	task := &fakeTask{due: f.now.Add(d), fn: fn}
	f.tasks = append(f.tasks, task)

	return func() { task.cancelled = true }
}

// Advance moves time forward, running due tasks in order.
func (f *fakeScheduler) Advance(d time.Duration) {
	end := f.now.Add(d)
	for {
		next := -1
		for i, task := range f.tasks {
			if task.cancelled || task.due.After(end) {
				continue
			}
			if next < 0 || task.due.Before(f.tasks[next].due) {
				next = i
			}
		}
		if next < 0 {
			break
		}
		task := f.tasks[next]
		f.tasks = append(f.tasks[:next], f.tasks[next+1:]...)
		f.now = task.due
		task.fn()
	}
	f.now = end
}

// FireAll runs every queued task, cancelled or not, like timers that raced their Stop.
func (f *fakeScheduler) FireAll() {
	tasks := f.tasks
	f.tasks = nil
	for _, task := range tasks {
		task.fn()
	}
}

var full = entity.Rect{X: 0, Y: 0, Width: 625, Height: 910}

func newTestAnimator(cfg Config) (*Animator, *fakeScheduler, *[]Frame, *[]entity.Rect) {
	sched := newFakeScheduler()
	a := NewAnimator(full, cfg, sched, sched)

	frames := &[]Frame{}
	settled := &[]entity.Rect{}
	a.OnFrame(func(f Frame) { *frames = append(*frames, f) })
	a.OnSettled(func(r entity.Rect) { *settled = append(*settled, r) })

	return a, sched, frames, settled
}

var defaultConfig = Config{Duration: 500 * time.Millisecond, FrameInterval: 16 * time.Millisecond, Padding: 0.5}

func TestTarget_Padding(t *testing.T) {
	got, ok := Target(entity.Rect{X: 100, Y: 200, Width: 50, Height: 80}, full, 0.5)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 87.5, Y: 180, Width: 75, Height: 120}, got)
}

func TestTarget_ClampsOrigin(t *testing.T) {
	got, ok := Target(entity.Rect{X: 5, Y: 2, Width: 40, Height: 40}, full, 0.5)
	require.True(t, ok)
	assert.Equal(t, 0.0, got.X)
	assert.Equal(t, 0.0, got.Y)
	assert.Equal(t, 60.0, got.Width)
}

func TestTarget_Degenerate(t *testing.T) {
	tests := []entity.Rect{
		{},
		{X: 10, Y: 10, Width: 0, Height: 5},
		{X: 10, Y: 10, Width: -1, Height: 5},
		{X: math.NaN(), Y: 10, Width: 5, Height: 5},
		{X: 10, Y: 10, Width: math.Inf(1), Height: 5},
	}

	for _, bound := range tests {
		got, ok := Target(bound, full, 0.5)
		assert.False(t, ok)
		assert.Equal(t, full, got)
	}
}

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(-1))
	assert.Equal(t, 0.0, Ease(0))
	assert.InDelta(t, 0.875, Ease(0.5), 1e-12)
	assert.Equal(t, 1.0, Ease(1))
	assert.Equal(t, 1.0, Ease(2))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Ease(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestAnimator_ConvergesMonotonically(t *testing.T) {
	a, sched, frames, settled := newTestAnimator(defaultConfig)
	bound := entity.Rect{X: 100, Y: 200, Width: 50, Height: 80}
	target, _ := Target(bound, full, 0.5)

	a.Select(bound)
	assert.Equal(t, Transitioning, a.State())

	sched.Advance(time.Second)

	require.Equal(t, Settled, a.State())
	require.Len(t, *settled, 1)
	assert.Equal(t, target, (*settled)[0])
	assert.Equal(t, target, a.Current())

	require.Greater(t, len(*frames), 2)
	last := (*frames)[len(*frames)-1]
	assert.Equal(t, target, last.Rect)
	assert.Equal(t, Settled, last.State)

	prev := math.Inf(1)
	for _, f := range *frames {
		d := f.Rect.Distance(target)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
}

func TestAnimator_IntermediateFramesAreConvex(t *testing.T) {
	a, sched, frames, _ := newTestAnimator(defaultConfig)
	bound := entity.Rect{X: 300, Y: 600, Width: 100, Height: 100}
	target, _ := Target(bound, full, 0.5)

	a.Select(bound)
	sched.Advance(time.Second)

	for _, f := range *frames {
		e := Ease(f.Progress)
		assert.InDelta(t, full.X+(target.X-full.X)*e, f.Rect.X, 1e-9)
		assert.InDelta(t, full.Width+(target.Width-full.Width)*e, f.Rect.Width, 1e-9)
	}
}

func TestAnimator_DegenerateBoundSettlesOnFullView(t *testing.T) {
	a, sched, frames, settled := newTestAnimator(defaultConfig)

	a.Select(entity.Rect{X: 10, Y: 10})

	assert.Equal(t, Settled, a.State())
	assert.Equal(t, full, a.Current())
	require.Len(t, *settled, 1)
	assert.Equal(t, full, (*settled)[0])
	assert.Len(t, *frames, 1)
	assert.Empty(t, sched.tasks)
}

func TestAnimator_SupersedeNeverAppliesStaleFrame(t *testing.T) {
	a, sched, frames, settled := newTestAnimator(defaultConfig)
	first := entity.Rect{X: 100, Y: 200, Width: 50, Height: 80}
	second := entity.Rect{X: 400, Y: 500, Width: 60, Height: 60}
	secondTarget, _ := Target(second, full, 0.5)

	a.Select(first)
	sched.Advance(100 * time.Millisecond)
	require.Equal(t, Transitioning, a.State())

	*frames = nil
	a.Select(second)

	// A timer of the first transition that fires anyway must be ignored.
	sched.FireAll()
	sched.Advance(time.Second)

	require.Len(t, *settled, 1)
	assert.Equal(t, secondTarget, (*settled)[0])

	require.NotEmpty(t, *frames)
	assert.Equal(t, full, (*frames)[0].Rect)
	prev := math.Inf(1)
	for _, f := range *frames {
		d := f.Rect.Distance(secondTarget)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
}

func TestAnimator_ReselectWhileSettled(t *testing.T) {
	a, sched, _, settled := newTestAnimator(defaultConfig)

	a.Select(entity.Rect{X: 100, Y: 200, Width: 50, Height: 80})
	sched.Advance(time.Second)
	require.Equal(t, Settled, a.State())

	a.Select(entity.Rect{X: 300, Y: 300, Width: 50, Height: 50})
	assert.Equal(t, Transitioning, a.State())
	assert.Equal(t, full, a.Current())

	sched.Advance(time.Second)
	assert.Len(t, *settled, 2)
}

func TestAnimator_Dismiss(t *testing.T) {
	a, sched, frames, settled := newTestAnimator(defaultConfig)

	a.Select(entity.Rect{X: 100, Y: 200, Width: 50, Height: 80})
	sched.Advance(50 * time.Millisecond)
	a.Dismiss()

	assert.Equal(t, AtRest, a.State())
	assert.Equal(t, full, a.Current())
	assert.Equal(t, full, a.Target())

	count := len(*frames)
	sched.FireAll()
	sched.Advance(time.Second)
	assert.Len(t, *frames, count)
	assert.Empty(t, *settled)
}

func TestAnimator_ZeroDurationSettlesImmediately(t *testing.T) {
	cfg := defaultConfig
	cfg.Duration = 0
	a, _, _, settled := newTestAnimator(cfg)

	a.Select(entity.Rect{X: 100, Y: 200, Width: 50, Height: 80})

	assert.Equal(t, Settled, a.State())
	require.Len(t, *settled, 1)
	assert.Equal(t, entity.Rect{X: 87.5, Y: 180, Width: 75, Height: 120}, (*settled)[0])
}

func TestPlanFor(t *testing.T) {
	plan := PlanFor(entity.Rect{X: 100, Y: 200, Width: 50, Height: 80}, full, defaultConfig)
	assert.True(t, plan.Animated)
	assert.Equal(t, full, plan.From)
	assert.Equal(t, entity.Rect{X: 87.5, Y: 180, Width: 75, Height: 120}, plan.To)
	assert.Equal(t, int64(500), plan.Millis)

	plan = PlanFor(entity.Rect{}, full, defaultConfig)
	assert.False(t, plan.Animated)
	assert.Equal(t, full, plan.To)
}
