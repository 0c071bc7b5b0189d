package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hurdle/internal/config"
	"github.com/vovakirdan/hurdle/internal/games/runner"
	"github.com/vovakirdan/hurdle/internal/storage"
)

// newLogger builds the logger from the global flags. Logs go to --log-file
// when set, otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// configureGame validates the game flags and hands them to the runner
// package before any game is created.
func configureGame(logger *log.Logger) (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	// Fail fast on a broken --config instead of falling back in-game.
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(preset)
	runner.SetLogger(logger)
	return cfg, nil
}

// difficultyLabel is the preset name recorded with saved runs.
func difficultyLabel() string {
	if flagDifficulty == "" {
		return string(config.DifficultyNormal)
	}
	return flagDifficulty
}

// openStore opens the score database when --db is set. Storage is optional:
// a failure is logged and the game runs without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
