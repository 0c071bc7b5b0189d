package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/hurdle/internal/audio"
)

// sweep is a sine tone gliding from one frequency to another with an
// exponential decay. It ends after its duration.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	decay    float64 // envelope decay rate per second
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, decay float64) *sweep {
	return &sweep{sr: sr, from: from, to: to, decay: decay, total: sr.N(d)}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		t := float64(g.pos) / float64(g.sr)

		sample := 0.35 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// bassLine repeats a note pattern forever. Each note is a soft square wave
// with a short pluck envelope.
type bassLine struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

func newBassLine(sr beep.SampleRate, notes []float64, noteLen time.Duration) *bassLine {
	return &bassLine{sr: sr, notes: notes, noteLen: sr.N(noteLen)}
}

func (g *bassLine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.noteLen) % len(g.notes)
		inNote := g.pos % g.noteLen
		freq := g.notes[idx]

		wave := 1.0
		if g.phase >= 0.5 {
			wave = -1.0
		}
		env := math.Exp(-float64(inNote) / float64(g.sr) * 6)

		sample := 0.08 * env * wave
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *bassLine) Err() error { return nil }

// synthesize builds a fresh streamer for the clip.
func synthesize(sr beep.SampleRate, c audio.Clip) beep.Streamer {
	switch c {
	case audio.ClipJump:
		return newSweep(sr, 440, 880, 120*time.Millisecond, 12)
	case audio.ClipBackground:
		// A minor walking pattern at 120 BPM eighths
		return newBassLine(sr, []float64{110, 110, 130.81, 146.83, 164.81, 146.83, 130.81, 98}, 250*time.Millisecond)
	case audio.ClipGameOver:
		return beep.Seq(
			newSweep(sr, 392, 370, 180*time.Millisecond, 3),
			newSweep(sr, 330, 311, 180*time.Millisecond, 3),
			newSweep(sr, 262, 196, 420*time.Millisecond, 2),
		)
	default:
		mustValid(c)
		return nil
	}
}
