package registry

import (
	"testing"

	"github.com/vovakirdan/hurdle/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.state = core.GameState{}
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists reports wrong membership")
	}

	list := List()
	var ids []string
	for _, g := range list {
		ids = append(ids, g.ID)
	}
	idxA, idxB := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			idxA = i
			if list[i].Title != "Stub stub-a" {
				t.Errorf("Unexpected title %q", list[i].Title)
			}
		case "stub-b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("Expected sorted IDs with both stubs, got %v", ids)
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	g2, _ := Create("stub-a")
	g1.Step(core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("Create should return independent instances")
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Expected an error for an unknown game")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub-dup", func() Game { return &stubGame{id: "stub-dup"} }},
		{"nil factory", "stub-nil", nil},
	}
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			Register(tt.id, tt.f)
		})
	}
}
