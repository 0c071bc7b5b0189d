package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hurdle/internal/storage"
)

func TestScoreboardLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{GameID: "runner", Player: "ann", Score: 4, Duration: 30 * time.Second})
	store.SaveRun(storage.Run{GameID: "runner", Player: "bob", Score: 9, Duration: 75 * time.Second, Difficulty: "hard"})

	m := NewScoreboardModel(store, "runner", "Hurdle", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][2] != "9" || rows[0][3] != "1:15" || rows[0][4] != "hard" {
		t.Errorf("Unexpected first row %v", rows[0])
	}
	if rows[1][4] != "-" {
		t.Errorf("Expected placeholder mode, got %q", rows[1][4])
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Hurdle", "2 runs", "best 9"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "Hurdle", 80, 24)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Expected empty message without a store")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("Expected quit command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{1500 * time.Millisecond, "0:02"},
		{75 * time.Second, "1:15"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
