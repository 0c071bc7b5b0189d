package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Timing: Timing{
			SpawnMinMs: 1000,
			SpawnMaxMs: 2500,
			JumpMs:     500,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			InitialSpeedMs: 3000,
			MinSpeedMs:     1500,
			StepMs:         150,
			IntervalMs:     5000,
		},
		Hitbox: Hitbox{
			GraceInset: 20,
		},
		Stage: Stage{
			Width:   800,
			Height:  300,
			GroundY: 260,
		},
		Player: Player{
			X:          60,
			Width:      90,
			Height:     100,
			JumpHeight: 150,
		},
		Obstacles: Obstacles{
			Categories: []Category{
				{Name: "small", Width: 30, Height: 40, VerticalOffset: 0, Glyph: "▖", Color: "green"},
				{Name: "medium", Width: 45, Height: 60, VerticalOffset: 0, Glyph: "▓", Color: "bright_green"},
				{Name: "large", Width: 60, Height: 80, VerticalOffset: 0, Glyph: "█", Color: "yellow"},
				{Name: "huge", Width: 80, Height: 50, VerticalOffset: 25, Glyph: "▒", Color: "orange"},
			},
		},
		Audio: Audio{
			Enabled:       true,
			MusicVolume:   0.35,
			EffectsVolume: 0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
