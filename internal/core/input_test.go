package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionStart)
	if !f.Has(ActionJump) || !f.Has(ActionStart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRestart) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionStart) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionStart:   "Start",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
