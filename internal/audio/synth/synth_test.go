package synth

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/hurdle/internal/audio"
)

func TestStopSilencesEveryInstance(t *testing.T) {
	mixer := &beep.Mixer{}
	p := newPlayer(mixer)
	vol := audio.MustVolume(1)

	p.PlayOnce(audio.ClipGameOver, vol)
	p.PlayOnce(audio.ClipGameOver, vol)
	p.PlayOnce(audio.ClipJump, vol)
	if got := p.Playing(audio.ClipGameOver); got != 2 {
		t.Fatalf("Playing(game over) = %d, expected 2", got)
	}

	p.Stop(audio.ClipGameOver)
	if got := p.Playing(audio.ClipGameOver); got != 0 {
		t.Errorf("Playing(game over) after Stop = %d, expected 0", got)
	}
	if got := p.Playing(audio.ClipJump); got != 1 {
		t.Errorf("Stop touched another clip: Playing(jump) = %d", got)
	}

	buf := make([][2]float64, 512)
	mixer.Stream(buf)
	if mixer.Len() != 1 {
		t.Errorf("Mixer holds %d streamers after Stop, expected only the jump", mixer.Len())
	}
}

func TestFinishedInstancesAreForgotten(t *testing.T) {
	mixer := &beep.Mixer{}
	p := newPlayer(mixer)

	p.PlayOnce(audio.ClipJump, audio.MustVolume(1))
	p.PlayOnce(audio.ClipJump, audio.MustVolume(1))

	// The jump chirp is 120ms, well under a second of samples.
	buf := make([][2]float64, 512)
	for i := 0; i < int(sampleRate)/len(buf); i++ {
		mixer.Stream(buf)
	}
	if got := p.Playing(audio.ClipJump); got != 0 {
		t.Errorf("Playing(jump) after the clip ended = %d, expected 0", got)
	}
	if mixer.Len() != 0 {
		t.Errorf("Mixer holds %d streamers, expected none", mixer.Len())
	}
}

func TestPlayLoopingOnce(t *testing.T) {
	p := newPlayer(&beep.Mixer{})
	vol := audio.MustVolume(0.5)

	p.PlayLooping(audio.ClipBackground, vol)
	p.PlayLooping(audio.ClipBackground, vol)
	if got := p.Playing(audio.ClipBackground); got != 1 {
		t.Errorf("Playing(background) = %d, expected 1", got)
	}

	p.Stop(audio.ClipBackground)
	p.PlayLooping(audio.ClipBackground, vol)
	if got := p.Playing(audio.ClipBackground); got != 1 {
		t.Errorf("Loop did not restart after Stop: Playing = %d", got)
	}
}

func TestUnknownClipPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unknown clip should panic")
		}
	}()
	newPlayer(&beep.Mixer{}).PlayOnce(audio.Clip(42), audio.MustVolume(1))
}

func TestSynthesizedClips(t *testing.T) {
	buf := make([][2]float64, 512)

	// One-shot clips end, loops do not.
	for _, c := range []audio.Clip{audio.ClipJump, audio.ClipGameOver} {
		s := synthesize(sampleRate, c)
		total := 0
		for i := 0; i < 1000; i++ {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 || total >= 1000*len(buf) {
			t.Errorf("%s: streamed %d samples, expected a finite non-empty clip", c, total)
		}
	}

	bg := synthesize(sampleRate, audio.ClipBackground)
	for i := 0; i < 200; i++ {
		if n, ok := bg.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("background loop ended after %d buffers", i)
		}
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(newSweep(sampleRate, 440, 440, 50*time.Millisecond, 0), audio.MustVolume(0))
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("silent volume produced sample %v at %d", buf[i], i)
		}
	}
}
