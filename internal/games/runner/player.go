package runner

import (
	"time"

	"github.com/vovakirdan/hurdle/internal/audio"
	"github.com/vovakirdan/hurdle/internal/clock"
)

// Jumper owns the player's binary jump state.
type Jumper struct {
	w        *world
	duration time.Duration
	sound    audio.Player
	volume   audio.Volume
	reset    *clock.Task
}

func newJumper(w *world, duration time.Duration, sound audio.Player, volume audio.Volume) *Jumper {
	return &Jumper{w: w, duration: duration, sound: sound, volume: volume}
}

// Jump lifts the player for the jump duration. It is a no-op when the game
// is not running or the player is already in the air, and reports whether
// a jump started.
func (j *Jumper) Jump() bool {
	st := &j.w.state
	if !st.Running || st.Jumping {
		return false
	}

	st.Jumping = true
	j.w.observer.JumpChanged(true)
	j.sound.PlayOnce(audio.ClipJump, j.volume)
	j.reset = j.w.sched.AfterFunc(j.duration, j.land)
	return true
}

func (j *Jumper) land() {
	if !j.w.state.Jumping {
		return
	}
	j.w.state.Jumping = false
	j.w.observer.JumpChanged(false)
}

// Cancel drops any pending landing and puts the player on the ground.
func (j *Jumper) Cancel() {
	j.reset.Cancel()
	j.reset = nil
	j.land()
}
