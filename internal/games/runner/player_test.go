package runner

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/hurdle/internal/audio"
)

func newTestJumper(w *world) (*Jumper, *audio.Recorder) {
	rec := audio.NewRecorder()
	return newJumper(w, 500*time.Millisecond, rec, audio.MustVolume(0.5)), rec
}

func TestJumpLifecycle(t *testing.T) {
	w := newTestWorld(defaultLayout())
	obs := &recordingObserver{}
	w.observer = obs
	j, rec := newTestJumper(w)

	if !j.Jump() {
		t.Fatal("Expected jump to start")
	}
	if !w.state.Jumping {
		t.Error("Expected Jumping after Jump")
	}
	if rec.Count("once", audio.ClipJump) != 1 {
		t.Errorf("Expected one jump sound, got %v", rec.Calls)
	}
	if rec.Calls[0].Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %v", rec.Calls[0].Volume)
	}

	w.sched.Advance(499 * time.Millisecond)
	if !w.state.Jumping {
		t.Error("Landed early")
	}
	w.sched.Advance(time.Millisecond)
	if w.state.Jumping {
		t.Error("Expected landing after 500ms")
	}
	if !reflect.DeepEqual(obs.jumps, []bool{true, false}) {
		t.Errorf("Jump events = %v, expected [true false]", obs.jumps)
	}
}

func TestJumpWhileJumping(t *testing.T) {
	w := newTestWorld(defaultLayout())
	j, rec := newTestJumper(w)

	j.Jump()
	pending := w.sched.Pending()
	w.sched.Advance(200 * time.Millisecond)

	if j.Jump() {
		t.Error("Second jump should be rejected")
	}
	if w.sched.Pending() != pending {
		t.Errorf("Pending changed from %d to %d", pending, w.sched.Pending())
	}
	if n := rec.Count("once", audio.ClipJump); n != 1 {
		t.Errorf("Expected one jump sound, got %d", n)
	}

	// Landing follows the first jump, not the rejected one.
	w.sched.Advance(300 * time.Millisecond)
	if w.state.Jumping {
		t.Error("Expected landing 500ms after the first jump")
	}
}

func TestJumpRequiresRunning(t *testing.T) {
	w := newTestWorld(defaultLayout())
	w.state.Running = false
	j, rec := newTestJumper(w)

	if j.Jump() {
		t.Error("Jump should be a no-op while stopped")
	}
	if w.state.Jumping || len(rec.Calls) != 0 || w.sched.Pending() != 0 {
		t.Error("Rejected jump left traces")
	}
}

func TestJumpCancel(t *testing.T) {
	w := newTestWorld(defaultLayout())
	j, _ := newTestJumper(w)

	j.Jump()
	j.Cancel()

	if w.state.Jumping {
		t.Error("Cancel should land the player")
	}
	if w.sched.Pending() != 0 {
		t.Errorf("Cancel left %d tasks", w.sched.Pending())
	}
	if !j.Jump() {
		t.Error("Should be able to jump again after Cancel")
	}
}
