package runner

import "time"

// Phase is the game state machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State is the session state shared by the game's components.
//
// Writers: state-machine transitions own Phase, Running and GameOver; the
// difficulty ramp owns Speed while running; the collision engine owns Score
// while running; the jump action owns Jumping.
type State struct {
	Phase    Phase
	Running  bool
	Speed    time.Duration // obstacle traversal duration for new spawns
	Score    int
	Jumping  bool
	GameOver bool // game-over banner flag for the presentation layer
}
