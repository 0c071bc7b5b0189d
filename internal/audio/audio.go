// Package audio defines the sound service used by the runner: a small typed
// contract (Clip, Volume, Player) plus the Nop and Recorder players. The
// speaker backend lives in audio/synth.
package audio

import (
	"errors"
	"fmt"
	"math"
)

// Clip identifies one of the game's sounds.
type Clip int

const (
	ClipJump       Clip = iota // short rising chirp
	ClipBackground             // looping bass line
	ClipGameOver               // descending cue
	clipCount
)

// String returns the clip name.
func (c Clip) String() string {
	switch c {
	case ClipJump:
		return "jump"
	case ClipBackground:
		return "background"
	case ClipGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("clip(%d)", int(c))
	}
}

// Valid reports whether c names a known clip.
func (c Clip) Valid() bool {
	return c >= 0 && c < clipCount
}

// ErrInvalidVolume is returned for volumes outside [0, 1].
var ErrInvalidVolume = errors.New("audio: invalid volume")

// Volume is a linear gain in [0, 1]. Construct it with NewVolume or
// MustVolume so an out-of-range value can never reach a backend.
type Volume struct {
	v float64
}

// NewVolume validates v and returns it as a Volume.
func NewVolume(v float64) (Volume, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Volume{}, fmt.Errorf("%w: %v", ErrInvalidVolume, v)
	}
	return Volume{v: v}, nil
}

// MustVolume is like NewVolume but panics on an invalid value.
// Use it for constants and already-validated configuration.
func MustVolume(v float64) Volume {
	vol, err := NewVolume(v)
	if err != nil {
		panic(err)
	}
	return vol
}

// Float returns the linear gain.
func (v Volume) Float() float64 {
	return v.v
}

// Silent reports whether the volume is zero.
func (v Volume) Silent() bool {
	return v.v == 0
}

// Player plays game clips.
// Implementations panic when handed a clip for which Valid is false.
type Player interface {
	// PlayOnce plays the clip from the start a single time.
	PlayOnce(c Clip, vol Volume)
	// PlayLooping plays the clip repeatedly until Stop. Calling it while
	// the clip already loops has no effect.
	PlayLooping(c Clip, vol Volume)
	// Stop silences every playing instance of the clip.
	Stop(c Clip)
}

// mustValid panics on an unknown clip.
func mustValid(c Clip) {
	if !c.Valid() {
		panic(fmt.Sprintf("audio: unknown clip %d", int(c)))
	}
}

// Nop is a Player that plays nothing. It still rejects unknown clips.
type Nop struct{}

// PlayOnce implements Player.
func (Nop) PlayOnce(c Clip, _ Volume) { mustValid(c) }

// PlayLooping implements Player.
func (Nop) PlayLooping(c Clip, _ Volume) { mustValid(c) }

// Stop implements Player.
func (Nop) Stop(c Clip) { mustValid(c) }
