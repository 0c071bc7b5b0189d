package runner

import (
	"time"

	"github.com/vovakirdan/hurdle/internal/clock"
	"github.com/vovakirdan/hurdle/internal/config"
)

// Ramp periodically shortens the obstacle traversal duration down to a
// floor. Once the floor is reached the ramp cancels itself for the rest of
// the session.
type Ramp struct {
	w        *world
	enabled  bool
	initial  time.Duration
	floor    time.Duration
	step     time.Duration
	interval time.Duration
	task     *clock.Task
}

func newRamp(w *world, cfg config.DifficultyConfig) *Ramp {
	return &Ramp{
		w:        w,
		enabled:  cfg.Enabled,
		initial:  cfg.InitialSpeed(),
		floor:    cfg.MinSpeed(),
		step:     cfg.Step(),
		interval: cfg.Interval(),
	}
}

// Initial returns the speed a session starts at.
func (r *Ramp) Initial() time.Duration {
	return r.initial
}

// Start begins ticking. Any previous ticker is canceled first, so there is
// never more than one.
func (r *Ramp) Start() {
	r.Stop()
	if !r.enabled {
		return
	}
	r.task = r.w.sched.Every(r.interval, r.tick)
}

// Stop cancels the ticker.
func (r *Ramp) Stop() {
	r.task.Cancel()
}

// Active reports whether the ramp is still ticking.
func (r *Ramp) Active() bool {
	return r.task.Active()
}

func (r *Ramp) tick() {
	st := &r.w.state
	if !st.Running {
		r.Stop()
		return
	}
	if st.Speed > r.floor {
		st.Speed = max(st.Speed-r.step, r.floor)
		return
	}
	r.Stop()
}
