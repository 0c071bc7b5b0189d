package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
//
//	easy   - slower start, gentler ramp
//	normal - config values unchanged, ramp on
//	hard   - faster start, steeper ramp
//	fixed  - no ramp, speed stays at the initial value
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyEasy:
		d.Enabled = true
		d.InitialSpeedMs += d.InitialSpeedMs / 6
		d.StepMs = max(d.StepMs*2/3, 1)
	case DifficultyNormal:
		d.Enabled = true
	case DifficultyHard:
		d.Enabled = true
		d.InitialSpeedMs -= d.InitialSpeedMs / 5
		d.StepMs += d.StepMs / 3
		cfg.Timing.SpawnMaxMs -= (cfg.Timing.SpawnMaxMs - cfg.Timing.SpawnMinMs) / 3
	case DifficultyFixed:
		d.Enabled = false
	}

	if d.InitialSpeedMs < d.MinSpeedMs {
		d.InitialSpeedMs = d.MinSpeedMs
	}
}
