package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/core"
	"github.com/vovakirdan/frame-color/internal/exercise"
	"github.com/vovakirdan/frame-color/internal/registry"
	"github.com/vovakirdan/frame-color/internal/settings"
)

// Deps are the services the screens operate on.
type Deps struct {
	Session *exercise.Session
	Audio   *settings.AudioStore
	Sounder Sounder       // optional
	History HistorySource // optional
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger     // optional
	Watcher *config.Watcher // optional
}

// AppModel routes between the exercise and administration screens.
type AppModel struct {
	route    registry.Route
	exercise ExerciseModel
	admin    AdminModel
	state    *exercise.State
	logger   *log.Logger
	quitting bool
}

// NewAppModel creates the root model and opens the screen at path.
func NewAppModel(deps Deps, path string) (AppModel, error) {
	route, err := registry.Resolve(path)
	if err != nil {
		return AppModel{}, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ui := deps.Config.UI
	return AppModel{
		route:    route,
		exercise: NewExerciseModel(deps.Session, deps.Sounder, deps.Config.Exercise.Hint, logger, deps.Runtime),
		admin:    NewAdminModel(deps.Audio, deps.Session.State(), deps.History, ui.VolumeStep, ui.HistorySize, logger, deps.Runtime),
		state:    deps.Session.State(),
		logger:   logger,
	}, nil
}

// Init starts the exercise timers.
func (m AppModel) Init() tea.Cmd {
	return m.exercise.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.exercise.keys.Map(msg) {
		case core.ActionNextScreen:
			return m.navigate(m.nextRoute().Path), nil
		case core.ActionBack:
			return m.navigate(registry.RouteExercise), nil
		}
		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		var cmd1, cmd2 tea.Cmd
		m, cmd1 = m.updateExercise(msg)
		m, cmd2 = m.updateAdmin(msg)
		return m, tea.Batch(cmd1, cmd2)

	case HintMsg, NextRoundMsg:
		return m.updateExercise(msg)

	case ConfigMsg:
		return m.applyConfig(msg.Config), nil
	}

	return m.updateActive(msg)
}

func (m AppModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.route.Name == registry.RouteAdministration {
		m, cmd = m.updateAdmin(msg)
		m.quitting = m.admin.IsQuitting()
	} else {
		m, cmd = m.updateExercise(msg)
		m.quitting = m.exercise.IsQuitting()
	}
	return m, cmd
}

func (m AppModel) updateExercise(msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.exercise.Update(msg)
	m.exercise = next.(ExerciseModel)
	return m, cmd
}

func (m AppModel) updateAdmin(msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.admin.Update(msg)
	m.admin = next.(AdminModel)
	return m, cmd
}

// navigate switches to the route at path. Unknown paths are logged and ignored.
func (m AppModel) navigate(path string) AppModel {
	route, err := registry.Resolve(path)
	if err != nil {
		m.logger.Warn("navigation failed", "path", path, "error", err)
		return m
	}
	if route.Name == registry.RouteAdministration {
		m.admin.Refresh()
	}
	m.route = route
	return m
}

// nextRoute returns the route after the active one in navigation order.
func (m AppModel) nextRoute() registry.Route {
	routes := registry.List()
	for i, r := range routes {
		if r.Path == m.route.Path {
			return routes[(i+1)%len(routes)]
		}
	}
	return m.route
}

// applyConfig takes over hint timings and the target from a reloaded config.
func (m AppModel) applyConfig(cfg config.Config) AppModel {
	m.exercise.SetHint(cfg.Exercise.Hint)

	target, err := cfg.Exercise.TargetColor()
	if err != nil {
		m.logger.Warn("ignoring reloaded target", "error", err)
		return m
	}
	if target != m.state.Target() {
		if err := m.state.SetTarget(target); err != nil {
			m.logger.Warn("ignoring reloaded target", "error", err)
		}
	}
	return m
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.route.Name == registry.RouteAdministration {
		return m.admin.View()
	}
	return m.exercise.View()
}

// Route returns the active route.
func (m AppModel) Route() registry.Route {
	return m.route
}

// Run starts the Bubble Tea program on the screen at path.
// A configured watcher forwards config reloads to the running program.
func Run(ctx context.Context, deps Deps, path string) error {
	model, err := NewAppModel(deps, path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if deps.Watcher != nil {
		go func() {
			err := deps.Watcher.Run(ctx, func(cfg config.Config) {
				p.Send(ConfigMsg{Config: cfg})
			})
			if err != nil && ctx.Err() == nil {
				model.logger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
