// Package synth is the speaker backend for audio.Player. Every clip is
// synthesized on the fly with gopxl/beep, so the game ships no sound files.
package synth

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/hurdle/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// Player plays synthesized clips through the system speaker.
type Player struct {
	mixer  *beep.Mixer
	active map[audio.Clip][]*beep.Ctrl // playing instances, oldest first
}

var _ audio.Player = (*Player)(nil)

// New initializes the speaker and starts an empty mixer on it.
// It fails when no audio device is available.
func New() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	p := newPlayer(&beep.Mixer{})
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(mixer *beep.Mixer) *Player {
	return &Player{
		mixer:  mixer,
		active: make(map[audio.Clip][]*beep.Ctrl),
	}
}

// PlayOnce implements audio.Player. Overlapping calls play overlapping
// instances.
func (p *Player) PlayOnce(c audio.Clip, vol audio.Volume) {
	mustValid(c)

	speaker.Lock()
	defer speaker.Unlock()
	p.start(c, vol)
}

// PlayLooping implements audio.Player.
func (p *Player) PlayLooping(c audio.Clip, vol audio.Volume) {
	mustValid(c)

	speaker.Lock()
	defer speaker.Unlock()
	if len(p.active[c]) > 0 {
		return
	}
	// Synthesized loops never end on their own
	p.start(c, vol)
}

// Stop implements audio.Player. It silences every playing instance of c.
func (p *Player) Stop(c audio.Clip) {
	mustValid(c)

	speaker.Lock()
	defer speaker.Unlock()
	for _, ctrl := range p.active[c] {
		// A nil streamer drains out of the mixer on the next buffer.
		ctrl.Paused = true
		ctrl.Streamer = nil
	}
	delete(p.active, c)
}

// Playing returns how many instances of c are playing.
func (p *Player) Playing(c audio.Clip) int {
	speaker.Lock()
	defer speaker.Unlock()
	return len(p.active[c])
}

// Close silences everything and releases the audio device.
func (p *Player) Close() {
	speaker.Lock()
	p.mixer.Clear()
	p.active = make(map[audio.Clip][]*beep.Ctrl)
	speaker.Unlock()

	speaker.Close()
}

// start adds one instance of c to the mixer. The caller holds the speaker
// lock.
func (p *Player) start(c audio.Clip, vol audio.Volume) {
	ctrl := &beep.Ctrl{}
	// The callback runs on the mixer's goroutine, which already holds the
	// speaker lock.
	ctrl.Streamer = beep.Seq(
		withVolume(synthesize(sampleRate, c), vol),
		beep.Callback(func() { p.finished(c, ctrl) }),
	)
	p.active[c] = append(p.active[c], ctrl)
	p.mixer.Add(ctrl)
}

func (p *Player) finished(c audio.Clip, ctrl *beep.Ctrl) {
	ctrls := slices.DeleteFunc(p.active[c], func(x *beep.Ctrl) bool { return x == ctrl })
	if len(ctrls) == 0 {
		delete(p.active, c)
		return
	}
	p.active[c] = ctrls
}

// withVolume applies a linear gain using beep's logarithmic volume effect.
func withVolume(s beep.Streamer, vol audio.Volume) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(vol.Float(), 1e-6)),
		Silent:   vol.Silent(),
	}
}

func mustValid(c audio.Clip) {
	if !c.Valid() {
		panic(fmt.Sprintf("audio: unknown clip %d", int(c)))
	}
}
