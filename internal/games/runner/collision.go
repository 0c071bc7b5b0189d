package runner

import (
	"github.com/vovakirdan/hurdle/internal/clock"
)

// Collision is the per-frame scoring and collision check.
//
// The player hitbox is shrunk by the grace inset on every side. The same
// shrunken box is used for both scoring and overlap so the two can never
// disagree about where the player is.
type Collision struct {
	w     *world
	inset float64
	frame *clock.Task
	onHit func()
}

func newCollision(w *world, inset float64, onHit func()) *Collision {
	return &Collision{w: w, inset: inset, onHit: onHit}
}

// Start begins the frame loop.
func (c *Collision) Start() {
	c.Stop()
	c.frame = c.w.sched.RequestFrame(c.tick)
}

// Stop cancels the pending frame.
func (c *Collision) Stop() {
	c.frame.Cancel()
}

// tick checks every live obstacle once. An obstacle whose center has passed
// strictly left of the player's left edge scores a point the first time it
// is seen there; the first overlap ends the game and skips the rest.
func (c *Collision) tick() {
	st := &c.w.state
	if !st.Running {
		return
	}

	player := c.w.layout.PlayerRect(st.Jumping).Inset(c.inset)
	now := c.w.sched.Now()

	for _, o := range c.w.live.snapshot() {
		box := c.w.layout.ObstacleRect(*o, now)

		if !o.Scored && box.CenterX() < player.Left {
			o.Scored = true
			st.Score++
			c.w.observer.ScoreChanged(st.Score)
		}

		if player.Intersects(box) {
			c.onHit()
			return
		}
	}

	if st.Running {
		c.frame = c.w.sched.RequestFrame(c.tick)
	}
}
