package audio

import "fmt"

// Call is one recorded Player invocation.
type Call struct {
	Op     string // "once", "loop" or "stop"
	Clip   Clip
	Volume float64
}

// String formats the call as "op:clip".
func (c Call) String() string {
	return fmt.Sprintf("%s:%s", c.Op, c.Clip)
}

// Recorder is a Player that records calls instead of playing them.
// Handy in tests and for headless sessions.
type Recorder struct {
	Calls   []Call
	looping map[Clip]bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{looping: make(map[Clip]bool)}
}

// PlayOnce implements Player.
func (r *Recorder) PlayOnce(c Clip, vol Volume) {
	mustValid(c)
	r.Calls = append(r.Calls, Call{Op: "once", Clip: c, Volume: vol.Float()})
}

// PlayLooping implements Player.
func (r *Recorder) PlayLooping(c Clip, vol Volume) {
	mustValid(c)
	if r.looping[c] {
		return
	}
	r.looping[c] = true
	r.Calls = append(r.Calls, Call{Op: "loop", Clip: c, Volume: vol.Float()})
}

// Stop implements Player.
func (r *Recorder) Stop(c Clip) {
	mustValid(c)
	delete(r.looping, c)
	r.Calls = append(r.Calls, Call{Op: "stop", Clip: c})
}

// Looping reports whether the clip is currently looping.
func (r *Recorder) Looping(c Clip) bool {
	return r.looping[c]
}

// Count returns how many calls match op and clip.
func (r *Recorder) Count(op string, c Clip) int {
	n := 0
	for _, call := range r.Calls {
		if call.Op == op && call.Clip == c {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps loop state.
func (r *Recorder) Reset() {
	r.Calls = nil
}
