// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import "time"

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Timing     Timing           `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Hitbox     Hitbox           `yaml:"hitbox"`
	Stage      Stage            `yaml:"stage"`
	Player     Player           `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Audio      Audio            `yaml:"audio"`
}

// Timing defines spawn and jump timing in milliseconds.
type Timing struct {
	SpawnMinMs int `yaml:"spawn_min_ms"` // inclusive lower bound of the spawn gap
	SpawnMaxMs int `yaml:"spawn_max_ms"` // exclusive upper bound of the spawn gap
	JumpMs     int `yaml:"jump_ms"`      // how long a jump keeps the player airborne
}

// SpawnMin returns the lower bound of the spawn interval.
func (t Timing) SpawnMin() time.Duration { return ms(t.SpawnMinMs) }

// SpawnMax returns the upper bound of the spawn interval.
func (t Timing) SpawnMax() time.Duration { return ms(t.SpawnMaxMs) }

// Jump returns the jump duration.
func (t Timing) Jump() time.Duration { return ms(t.JumpMs) }

// DifficultyConfig defines the speed ramp. Speed is the time an obstacle
// takes to cross the stage, so a smaller value is faster.
type DifficultyConfig struct {
	Enabled        bool `yaml:"enabled"`
	InitialSpeedMs int  `yaml:"initial_speed_ms"`
	MinSpeedMs     int  `yaml:"min_speed_ms"`
	StepMs         int  `yaml:"step_ms"`
	IntervalMs     int  `yaml:"interval_ms"`
}

// InitialSpeed returns the traversal duration at session start.
func (d DifficultyConfig) InitialSpeed() time.Duration { return ms(d.InitialSpeedMs) }

// MinSpeed returns the traversal duration floor.
func (d DifficultyConfig) MinSpeed() time.Duration { return ms(d.MinSpeedMs) }

// Step returns the per-tick speed reduction.
func (d DifficultyConfig) Step() time.Duration { return ms(d.StepMs) }

// Interval returns the ramp period.
func (d DifficultyConfig) Interval() time.Duration { return ms(d.IntervalMs) }

// Hitbox defines collision leniency.
type Hitbox struct {
	GraceInset float64 `yaml:"grace_inset"` // shrink applied to each side of the player box
}

// Stage defines the world dimensions in world units.
type Stage struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// Player defines the player's body and jump.
type Player struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	JumpHeight float64 `yaml:"jump_height"`
}

// Obstacles holds the obstacle catalog.
type Obstacles struct {
	Categories []Category `yaml:"categories"`
}

// Category is one obstacle size class.
type Category struct {
	Name           string  `yaml:"name"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	VerticalOffset float64 `yaml:"vertical_offset"` // lift of the obstacle's bottom above ground
	Glyph          string  `yaml:"glyph"`
	Color          string  `yaml:"color"`
}

// Audio defines sound settings.
type Audio struct {
	Enabled       bool    `yaml:"enabled"`
	MusicVolume   float64 `yaml:"music_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// CategoryCount is the fixed size of the obstacle catalog.
const CategoryCount = 4

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
