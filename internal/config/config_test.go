package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/vovakirdan/frame-color/internal/exercise"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("embedded YAML differs from DefaultConfig (-want +got):\n%s", diff)
	}
}

func TestDefaultHintTimings(t *testing.T) {
	hint := DefaultConfig().Exercise.Hint
	if hint.Visible() != 3*time.Second {
		t.Errorf("Expected 3s visible, got %v", hint.Visible())
	}
	if hint.Hidden() != 2*time.Second {
		t.Errorf("Expected 2s hidden, got %v", hint.Hidden())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("exercise:\n  target: \"#93bc39\"\n  round_mode: cycle\nui:\n  volume_step: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	target, err := cfg.Exercise.TargetColor()
	if err != nil || target != exercise.FrameColorGreen {
		t.Errorf("TargetColor() = %v, %v; want green", target, err)
	}
	mode, _ := cfg.Exercise.Mode()
	if mode != exercise.RoundCycle {
		t.Errorf("Expected cycle mode, got %v", mode)
	}
	if cfg.UI.VolumeStep != 10 {
		t.Errorf("Expected volume step 10, got %d", cfg.UI.VolumeStep)
	}
	// Unset sections fall back to defaults
	if cfg.Exercise.Hint.VisibleMS != HandVisibleDurationMS {
		t.Errorf("Expected default hint timing, got %d", cfg.Exercise.Hint.VisibleMS)
	}
	if cfg.Storage.DBPath != DefaultConfig().Storage.DBPath {
		t.Errorf("Expected default db path, got %q", cfg.Storage.DBPath)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "exercise: [unclosed"},
		{"unknown target", "exercise:\n  target: purple\n"},
		{"unknown mode", "exercise:\n  round_mode: chaos\n"},
		{"negative tone", "sounds:\n  wrong_tone:\n    frequencies: [-1]\n"},
		{"unknown key", "ui:\n  tick_rate: 30\n"},
		{"misspelled key", "exercise:\n  round-mode: cycle\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() should fail for %s", tt.name)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("fallback config mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRoundMode(t *testing.T) {
	cfg := DefaultConfig()

	if err := ApplyRoundMode(&cfg, ""); err != nil || cfg.Exercise.RoundMode != "fixed" {
		t.Errorf("empty mode should be a no-op, got %q, %v", cfg.Exercise.RoundMode, err)
	}
	if err := ApplyRoundMode(&cfg, "random"); err != nil || cfg.Exercise.RoundMode != "random" {
		t.Errorf("expected random, got %q, %v", cfg.Exercise.RoundMode, err)
	}
	if err := ApplyRoundMode(&cfg, "bogus"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if cfg.Exercise.RoundMode != "random" {
		t.Errorf("failed apply must not change the mode, got %q", cfg.Exercise.RoundMode)
	}
}

func TestWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("exercise:\n  target: blue\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg Config) {
			select {
			case changes <- cfg:
			default:
			}
		})
	}()

	// Invalid content is skipped, the next valid write is delivered
	if err := os.WriteFile(path, []byte("exercise:\n  target: purple\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("exercise:\n  target: yellow\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// A reload may observe the truncated file mid-write; wait for the final content
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-changes:
			if cfg.Exercise.Target == "purple" {
				t.Fatal("invalid config was delivered")
			}
			reloaded = cfg.Exercise.Target == "yellow"
		case <-deadline:
			cancel()
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}
