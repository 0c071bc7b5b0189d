package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hurdle/internal/config"
	"github.com/vovakirdan/hurdle/internal/storage"
)

func TestDefaultsCommandPrintsEmbeddedYAML(t *testing.T) {
	var out bytes.Buffer
	defaultsCmd.SetOut(&out)
	defer defaultsCmd.SetOut(nil)

	if err := defaultsCmd.RunE(defaultsCmd, nil); err != nil {
		t.Fatalf("defaults failed: %v", err)
	}
	if !bytes.Equal(out.Bytes(), config.DefaultYAML()) {
		t.Error("defaults output differs from the embedded config")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	old := flagLogLevel
	defer func() { flagLogLevel = old }()

	flagLogLevel = "loud"
	if _, _, err := newLogger(&bytes.Buffer{}, "test"); err == nil {
		t.Error("Expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	logger, closeFn, err := newLogger(&bytes.Buffer{}, "test")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	defer closeFn()
	if logger == nil {
		t.Fatal("Expected a logger")
	}
}

func TestOpenStoreIsOptIn(t *testing.T) {
	old := flagDBPath
	defer func() { flagDBPath = old }()

	logger, closeFn, _ := newLogger(&bytes.Buffer{}, "test")
	defer closeFn()

	flagDBPath = ""
	if store := openStore(logger); store != nil {
		t.Error("Expected no store without --db")
	}

	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	store := openStore(logger)
	if store == nil {
		t.Fatal("Expected a store with --db")
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{GameID: gameID, Score: 3}); err != nil {
		t.Errorf("SaveRun failed: %v", err)
	}
}

func TestConfigureGameRejectsBadDifficulty(t *testing.T) {
	old := flagDifficulty
	defer func() { flagDifficulty = old }()

	logger, closeFn, _ := newLogger(&bytes.Buffer{}, "test")
	defer closeFn()

	flagDifficulty = "nightmare"
	if _, err := configureGame(logger); err == nil {
		t.Error("Expected an error for an unknown difficulty")
	}
}
