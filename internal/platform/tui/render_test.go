package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/hurdle/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 3")
	s.DrawTextColored(2, 1, "▓▓", core.ColorBrightGreen)
	s.DrawHLine(0, 2, 12, '▔', core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	want := []string{"Score: 3    ", "  ▓▓        ", strings.Repeat("▔", 12)}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("No style for color %d", c)
		}
	}
}
