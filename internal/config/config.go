// Package config provides YAML-based configuration loading for the
// frame-color exercise.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/frame-color/internal/exercise"
)

// Config is the full application configuration.
type Config struct {
	Exercise ExerciseConfig `yaml:"exercise"`
	Sounds   SoundsConfig   `yaml:"sounds"`
	Storage  StorageConfig  `yaml:"storage"`
	UI       UIConfig       `yaml:"ui"`
}

// ExerciseConfig defines the rounds of the exercise.
type ExerciseConfig struct {
	Target    string     `yaml:"target"`     // Color name or hex of the first target
	RoundMode string     `yaml:"round_mode"` // "fixed", "random" or "cycle"
	Hint      HintConfig `yaml:"hint"`
}

// HintConfig defines the pointing-hand hint blink cycle.
type HintConfig struct {
	VisibleMS int `yaml:"visible_ms"`
	HiddenMS  int `yaml:"hidden_ms"`
}

// SoundsConfig defines feedback sounds.
type SoundsConfig struct {
	Success     string     `yaml:"success"` // Asset path played on a correct pick
	Wrong       string     `yaml:"wrong"`   // Asset path played on a wrong pick
	SampleRate  int        `yaml:"sample_rate"`
	SuccessTone ToneConfig `yaml:"success_tone"`
	WrongTone   ToneConfig `yaml:"wrong_tone"`
}

// ToneConfig describes a synthesized note sequence.
type ToneConfig struct {
	Frequencies []float64 `yaml:"frequencies"` // Hz, played in order
	NoteMS      int       `yaml:"note_ms"`
}

// StorageConfig defines where settings and history are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// UIConfig defines terminal UI behavior.
type UIConfig struct {
	VolumeStep  int `yaml:"volume_step"`
	HistorySize int `yaml:"history_size"`
}

// TargetColor parses the configured first target.
func (c ExerciseConfig) TargetColor() (exercise.FrameColor, error) {
	if c.Target == "" {
		return exercise.DefaultTarget, nil
	}
	return exercise.ParseFrameColor(c.Target)
}

// Mode parses the configured round mode.
func (c ExerciseConfig) Mode() (exercise.RoundMode, error) {
	return exercise.ParseRoundMode(c.RoundMode)
}

// Visible returns how long the hint is shown.
func (h HintConfig) Visible() time.Duration {
	return time.Duration(h.VisibleMS) * time.Millisecond
}

// Hidden returns how long the hint stays hidden.
func (h HintConfig) Hidden() time.Duration {
	return time.Duration(h.HiddenMS) * time.Millisecond
}

// NoteDuration returns the length of a single note.
func (t ToneConfig) NoteDuration() time.Duration {
	return time.Duration(t.NoteMS) * time.Millisecond
}

// Validate checks values that cannot be repaired by falling back to defaults.
func (c Config) Validate() error {
	if _, err := c.Exercise.TargetColor(); err != nil {
		return fmt.Errorf("config: exercise.target: %w", err)
	}
	if _, err := c.Exercise.Mode(); err != nil {
		return fmt.Errorf("config: exercise.round_mode: %w", err)
	}
	for _, tone := range []ToneConfig{c.Sounds.SuccessTone, c.Sounds.WrongTone} {
		for _, f := range tone.Frequencies {
			if f <= 0 {
				return fmt.Errorf("config: tone frequency must be positive, got %v", f)
			}
		}
	}
	return nil
}

// withDefaults fills zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()

	if c.Exercise.Hint.VisibleMS <= 0 {
		c.Exercise.Hint.VisibleMS = d.Exercise.Hint.VisibleMS
	}
	if c.Exercise.Hint.HiddenMS <= 0 {
		c.Exercise.Hint.HiddenMS = d.Exercise.Hint.HiddenMS
	}
	if c.Sounds.Success == "" {
		c.Sounds.Success = d.Sounds.Success
	}
	if c.Sounds.Wrong == "" {
		c.Sounds.Wrong = d.Sounds.Wrong
	}
	if c.Sounds.SampleRate <= 0 {
		c.Sounds.SampleRate = d.Sounds.SampleRate
	}
	if len(c.Sounds.SuccessTone.Frequencies) == 0 {
		c.Sounds.SuccessTone.Frequencies = d.Sounds.SuccessTone.Frequencies
	}
	if c.Sounds.SuccessTone.NoteMS <= 0 {
		c.Sounds.SuccessTone.NoteMS = d.Sounds.SuccessTone.NoteMS
	}
	if len(c.Sounds.WrongTone.Frequencies) == 0 {
		c.Sounds.WrongTone.Frequencies = d.Sounds.WrongTone.Frequencies
	}
	if c.Sounds.WrongTone.NoteMS <= 0 {
		c.Sounds.WrongTone.NoteMS = d.Sounds.WrongTone.NoteMS
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = d.Storage.DBPath
	}
	if c.UI.VolumeStep <= 0 {
		c.UI.VolumeStep = d.UI.VolumeStep
	}
	if c.UI.HistorySize <= 0 {
		c.UI.HistorySize = d.UI.HistorySize
	}

	return c
}

// ApplyRoundMode overrides the round mode if mode is non-empty.
func ApplyRoundMode(cfg *Config, mode string) error {
	if mode == "" {
		return nil
	}
	m, err := exercise.ParseRoundMode(mode)
	if err != nil {
		return err
	}
	cfg.Exercise.RoundMode = string(m)
	return nil
}
