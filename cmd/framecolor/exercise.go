package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/core"
	"github.com/vovakirdan/frame-color/internal/exercise"
	"github.com/vovakirdan/frame-color/internal/feedback"
	"github.com/vovakirdan/frame-color/internal/platform/tui"
	"github.com/vovakirdan/frame-color/internal/registry"
)

var (
	flagRoundMode string
	flagTarget    string
	flagWatch     bool
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Start the color-matching exercise",
	Long: `Show a target color and pick the frame that matches it.

Controls:
  Left/Right  - Move between frames
  Enter/Space - Pick the highlighted frame
  R           - Reset the pick
  Tab         - Switch to administration
  Q/Ctrl+C    - Quit

Round modes:
  fixed  - The target never changes
  random - A new random target after each correct pick
  cycle  - Targets follow the frame order

Examples:
  framecolor exercise
  framecolor exercise --target yellow
  framecolor exercise --round-mode random --seed 42
  framecolor exercise --config ./framecolor.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runExercise,
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the administration screen",
	Long: `Adjust the feedback volume and the target color, and review recent attempts.

Controls:
  Up/Down     - Select a setting
  Left/Right  - Change the value
  Tab/Esc     - Back to the exercise
  Q/Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	RunE: runAdmin,
}

func addExerciseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRoundMode, "round-mode", "", "Round mode: fixed, random, cycle")
	cmd.Flags().StringVar(&flagTarget, "target", "", "First target color (name or hex)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes")
}

func init() {
	addExerciseFlags(exerciseCmd)
	addExerciseFlags(adminCmd)
}

func runExercise(cmd *cobra.Command, _ []string) error {
	return runTUI(cmd.Context(), registry.RouteExercise)
}

func runAdmin(cmd *cobra.Command, _ []string) error {
	return runTUI(cmd.Context(), registry.RouteAdministration)
}

func runTUI(ctx context.Context, path string) error {
	if flagWatch && flagConfig == "" {
		return fmt.Errorf("--watch requires --config")
	}

	svc, err := openServices(false)
	if err != nil {
		return err
	}
	defer svc.Close()

	cfg := svc.cfg
	if err := config.ApplyRoundMode(&cfg, flagRoundMode); err != nil {
		return err
	}
	if flagTarget != "" {
		cfg.Exercise.Target = flagTarget
	}
	target, err := cfg.Exercise.TargetColor()
	if err != nil {
		return err
	}
	mode, err := cfg.Exercise.Mode()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger := svc.logger
	state := exercise.NewState(target)
	unsubscribe := state.Subscribe(func(c exercise.Change) {
		logger.Debug("selection changed", "field", c.Field, "old", c.Old, "new", c.New)
	})
	defer unsubscribe()

	var recorder exercise.AttemptRecorder
	deps := tui.Deps{
		Audio:   svc.audio,
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
	}
	if svc.store != nil {
		recorder = svc.store
		deps.History = svc.store
	}
	deps.Session = exercise.NewSession(state, exercise.NewRounds(mode, runtime.EffectiveSeed()), recorder)
	logger.Info("session started", "id", deps.Session.ID(), "target", target, "mode", mode)

	synth, err := feedback.NewSynth(cfg.Sounds)
	if err != nil {
		return err
	}
	player := feedback.NewPlayer(synth, svc.audio, cfg.Sounds, logger.WithPrefix("feedback"))
	player.SetMuted(flagMute)
	player.Init()
	defer player.Close()
	deps.Sounder = player

	if flagWatch {
		watcher, err := config.NewWatcher(flagConfig, logger.WithPrefix("config"))
		if err != nil {
			return err
		}
		deps.Watcher = watcher
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, deps, path)
}
