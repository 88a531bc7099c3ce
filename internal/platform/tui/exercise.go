package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/core"
	"github.com/vovakirdan/frame-color/internal/exercise"
)

// successPause is how long the success message stays before the next round.
const successPause = 1500 * time.Millisecond

// Sounder plays the feedback for a checked pick.
type Sounder interface {
	Play(outcome exercise.Outcome) bool
}

// ExerciseModel is the Bubble Tea model of the color-matching screen.
type ExerciseModel struct {
	session *exercise.Session
	sounder Sounder
	logger  *log.Logger
	hint    config.HintConfig

	colors      []exercise.FrameColor
	cursor      int
	outcome     exercise.Outcome
	hintVisible bool
	hintGen     int
	round       int

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewExerciseModel creates the exercise screen. sounder and logger may be nil.
func NewExerciseModel(session *exercise.Session, sounder Sounder, hint config.HintConfig, logger *log.Logger, cfg core.RuntimeConfig) ExerciseModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return ExerciseModel{
		session:     session,
		sounder:     sounder,
		logger:      logger,
		hint:        hint,
		colors:      session.State().AllColors(),
		hintVisible: true,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
	}
}

// Init starts the hint blink cycle.
func (m ExerciseModel) Init() tea.Cmd {
	return hintCmd(m.hint.Visible(), m.hintGen)
}

// Update handles messages for the exercise screen.
func (m ExerciseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Map(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case HintMsg:
		if msg.Gen != m.hintGen {
			return m, nil
		}
		m.hintVisible = !m.hintVisible
		next := m.hint.Hidden()
		if m.hintVisible {
			next = m.hint.Visible()
		}
		return m, hintCmd(next, m.hintGen)

	case NextRoundMsg:
		if msg.Round != m.round || m.outcome != exercise.OutcomeSuccess {
			return m, nil
		}
		m.session.NextRound()
		m.outcome = exercise.OutcomeNone
		m.round++
		return m.restartHint()
	}

	return m, nil
}

// handleAction applies a semantic action.
// After a correct pick only quit and reset are honored until the next round starts.
func (m ExerciseModel) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	if m.outcome == exercise.OutcomeSuccess {
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionConfirm:
			return m, nil
		}
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft:
		m.cursor = (m.cursor - 1 + len(m.colors)) % len(m.colors)

	case core.ActionRight:
		m.cursor = (m.cursor + 1) % len(m.colors)

	case core.ActionConfirm:
		return m.pick(m.colors[m.cursor])

	case core.ActionReset:
		m.session.State().Reset()
		m.outcome = exercise.OutcomeNone
		m.round++ // cancels a pending next round
		return m.restartHint()
	}

	return m, nil
}

// pick checks the highlighted color and plays the feedback.
func (m ExerciseModel) pick(c exercise.FrameColor) (tea.Model, tea.Cmd) {
	outcome, err := m.session.Pick(c)
	if err != nil {
		m.logger.Warn("failed to record attempt", "error", err)
	}
	m.outcome = outcome

	if m.sounder != nil {
		m.sounder.Play(outcome)
	}

	if outcome == exercise.OutcomeSuccess {
		m.hintVisible = false
		m.hintGen++
		return m, nextRoundCmd(successPause, m.round)
	}
	return m, nil
}

// restartHint shows the hint and starts a fresh blink cycle.
func (m ExerciseModel) restartHint() (tea.Model, tea.Cmd) {
	m.hintGen++
	m.hintVisible = true
	return m, hintCmd(m.hint.Visible(), m.hintGen)
}

// SetHint replaces the hint timings; the new values apply from the next toggle.
func (m *ExerciseModel) SetHint(h config.HintConfig) {
	m.hint = h
}

// View renders the exercise screen.
func (m ExerciseModel) View() string {
	if m.quitting {
		return ""
	}

	state := m.session.State()
	picked, _ := state.Selected()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F R A M E   C O L O R"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Find the frame with this color:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(swatch(state.Target(), frameWidth*2, 2), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(renderFrames(m.colors, m.cursor, picked), m.width))
	b.WriteString("\n")

	// Pointing hand under the highlighted frame
	hand := ""
	if m.hintVisible && m.outcome != exercise.OutcomeSuccess {
		offset := m.cursor*(frameWidth+4) + frameWidth/2
		hand = strings.Repeat(" ", offset) + "☝"
	}
	b.WriteString(centerText(fmt.Sprintf("%-*s", len(m.colors)*(frameWidth+4), hand), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.outcomeLine(), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Attempts: %d  |  Correct: %d", m.session.Attempts(), m.session.Successes())
	b.WriteString(centerText(mutedStyle.Render(stats), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(mutedStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m ExerciseModel) outcomeLine() string {
	switch m.outcome {
	case exercise.OutcomeSuccess:
		return successStyle.Render("Good job!")
	case exercise.OutcomeWrong:
		return wrongStyle.Render("Try again")
	default:
		return mutedStyle.Render("Pick a frame")
	}
}

// Outcome returns the result of the last pick.
func (m ExerciseModel) Outcome() exercise.Outcome {
	return m.outcome
}

// Cursor returns the index of the highlighted frame.
func (m ExerciseModel) Cursor() int {
	return m.cursor
}

// HintVisible reports whether the pointing hand is shown.
func (m ExerciseModel) HintVisible() bool {
	return m.hintVisible
}

// IsQuitting returns true if user requested to quit.
func (m ExerciseModel) IsQuitting() bool {
	return m.quitting
}
