package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.hurdle/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the implicit locations are skipped when broken.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RunnerConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	// A listed catalog replaces the default one instead of merging into it.
	cfg.Obstacles.Categories = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if cfg.Obstacles.Categories == nil {
		cfg.Obstacles.Categories = DefaultRunnerConfig().Obstacles.Categories
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hurdle", "configs", filename)
}

// Validate reports every out-of-range setting.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	t := c.Timing
	check(t.SpawnMinMs > 0, "timing.spawn_min_ms must be positive, got %d", t.SpawnMinMs)
	check(t.SpawnMaxMs > t.SpawnMinMs, "timing.spawn_max_ms (%d) must exceed spawn_min_ms (%d)", t.SpawnMaxMs, t.SpawnMinMs)
	check(t.JumpMs > 0, "timing.jump_ms must be positive, got %d", t.JumpMs)

	d := c.Difficulty
	check(d.MinSpeedMs > 0, "difficulty.min_speed_ms must be positive, got %d", d.MinSpeedMs)
	check(d.InitialSpeedMs >= d.MinSpeedMs, "difficulty.initial_speed_ms (%d) must not be below min_speed_ms (%d)", d.InitialSpeedMs, d.MinSpeedMs)
	check(d.StepMs > 0, "difficulty.step_ms must be positive, got %d", d.StepMs)
	check(d.IntervalMs > 0, "difficulty.interval_ms must be positive, got %d", d.IntervalMs)

	check(c.Hitbox.GraceInset >= 0, "hitbox.grace_inset must not be negative, got %v", c.Hitbox.GraceInset)
	check(2*c.Hitbox.GraceInset < c.Player.Width && 2*c.Hitbox.GraceInset < c.Player.Height,
		"hitbox.grace_inset %v leaves no player hitbox", c.Hitbox.GraceInset)

	s := c.Stage
	check(s.Width > 0 && s.Height > 0, "stage size must be positive, got %vx%v", s.Width, s.Height)
	check(s.GroundY > 0 && s.GroundY <= s.Height, "stage.ground_y %v must lie within the stage", s.GroundY)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive, got %vx%v", p.Width, p.Height)
	check(p.X >= 0 && p.X+p.Width <= s.Width, "player.x %v must keep the player on stage", p.X)
	check(p.JumpHeight > 0, "player.jump_height must be positive, got %v", p.JumpHeight)

	cats := c.Obstacles.Categories
	check(len(cats) == CategoryCount, "obstacles.categories must list exactly %d entries, got %d", CategoryCount, len(cats))
	seen := make(map[string]bool)
	for i, cat := range cats {
		check(cat.Name != "", "obstacles.categories[%d].name must be set", i)
		check(!seen[cat.Name], "obstacles.categories[%d].name %q is duplicated", i, cat.Name)
		seen[cat.Name] = true
		check(cat.Width > 0 && cat.Height > 0, "obstacles.categories[%d] size must be positive", i)
		check(cat.VerticalOffset >= 0, "obstacles.categories[%d].vertical_offset must not be negative", i)
		check(utf8.RuneCountInString(cat.Glyph) == 1, "obstacles.categories[%d].glyph must be a single character", i)
	}

	a := c.Audio
	check(a.MusicVolume >= 0 && a.MusicVolume <= 1, "audio.music_volume must be within [0, 1], got %v", a.MusicVolume)
	check(a.EffectsVolume >= 0 && a.EffectsVolume <= 1, "audio.effects_volume must be within [0, 1], got %v", a.EffectsVolume)

	return errors.Join(errs...)
}
