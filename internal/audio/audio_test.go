package audio

import (
	"errors"
	"math"
	"testing"
)

func TestNewVolume(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"zero", 0, true},
		{"half", 0.5, true},
		{"full", 1, true},
		{"negative", -0.1, false},
		{"too loud", 1.01, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vol, err := NewVolume(tc.value)
			if tc.ok {
				if err != nil {
					t.Fatalf("NewVolume(%v) failed: %v", tc.value, err)
				}
				if vol.Float() != tc.value {
					t.Errorf("Float() = %v, expected %v", vol.Float(), tc.value)
				}
				return
			}
			if !errors.Is(err, ErrInvalidVolume) {
				t.Errorf("NewVolume(%v) error = %v, expected ErrInvalidVolume", tc.value, err)
			}
		})
	}
}

func TestMustVolumePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustVolume(2) should panic")
		}
	}()
	MustVolume(2)
}

func TestUnknownClipPanics(t *testing.T) {
	players := map[string]Player{
		"nop":      Nop{},
		"recorder": NewRecorder(),
	}
	for name, p := range players {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Unknown clip should panic")
				}
			}()
			p.PlayOnce(Clip(42), MustVolume(1))
		})
	}
}

func TestRecorderLooping(t *testing.T) {
	r := NewRecorder()
	vol := MustVolume(0.4)

	r.PlayLooping(ClipBackground, vol)
	r.PlayLooping(ClipBackground, vol) // already looping
	if r.Count("loop", ClipBackground) != 1 {
		t.Errorf("Looping an already looping clip should be ignored, calls: %v", r.Calls)
	}
	if !r.Looping(ClipBackground) {
		t.Error("Background should be looping")
	}

	r.Stop(ClipBackground)
	if r.Looping(ClipBackground) {
		t.Error("Stop should end the loop")
	}
	if got := r.Calls[len(r.Calls)-1].String(); got != "stop:background" {
		t.Errorf("Last call = %q, expected stop:background", got)
	}
}
