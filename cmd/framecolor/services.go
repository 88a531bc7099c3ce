package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/settings"
	"github.com/vovakirdan/frame-color/internal/storage"
)

// services bundles what every command needs: config, logger and storage.
type services struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store // nil when the database could not be opened
	kv     settings.KV
	audio  *settings.AudioStore
}

// newLogger builds the root logger at the requested level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "framecolor",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// openServices loads the config and opens the settings store.
// With requireStore unset, a database failure falls back to in-memory
// settings so the exercise still runs.
func openServices(requireStore bool) (*services, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	s := &services{cfg: cfg, logger: logger}

	store, err := storage.Open(cfg.Storage.DBPath)
	switch {
	case err == nil:
		s.store = store
		s.kv = store
	case requireStore:
		return nil, err
	default:
		logger.Warn("settings will not be saved", "db", cfg.Storage.DBPath, "error", err)
		s.kv = storage.NewMemory()
	}

	s.audio = settings.NewAudioStore(s.kv, logger.WithPrefix("settings"))
	return s, nil
}

// Close releases the database.
func (s *services) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close database", "error", err)
	}
}
