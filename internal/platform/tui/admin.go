package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-color/internal/core"
	"github.com/vovakirdan/frame-color/internal/exercise"
	"github.com/vovakirdan/frame-color/internal/settings"
	"github.com/vovakirdan/frame-color/internal/storage"
)

// Administration layout constants
const (
	volumeBarWidth = 30
	historyRows    = 8
)

// Administration rows
const (
	adminRowVolume = iota
	adminRowTarget
	adminRowCount
)

// HistorySource provides stored attempts for the history table.
type HistorySource interface {
	RecentAttempts(limit int) ([]storage.AttemptEntry, error)
	Stats() (storage.AttemptStats, error)
}

// AdminModel is the Bubble Tea model of the administration screen.
// It edits the volume and the target color.
type AdminModel struct {
	audio   *settings.AudioStore
	state   *exercise.State
	history HistorySource
	logger  *log.Logger

	step        int
	historySize int
	row         int

	bar      progress.Model
	table    table.Model
	stats    storage.AttemptStats
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewAdminModel creates the administration screen. history and logger may be nil.
func NewAdminModel(audio *settings.AudioStore, state *exercise.State, history HistorySource, step, historySize int, logger *log.Logger, cfg core.RuntimeConfig) AdminModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if step <= 0 {
		step = 5
	}
	m := AdminModel{
		audio:       audio,
		state:       state,
		history:     history,
		logger:      logger,
		step:        step,
		historySize: historySize,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(volumeBarWidth)),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
	}
	m.table = newHistoryTable()
	m.Refresh()
	return m
}

func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 20},
		{Title: "Target", Width: 8},
		{Title: "Picked", Width: 8},
		{Title: "Result", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(historyRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the attempt history.
func (m *AdminModel) Refresh() {
	if m.history == nil {
		m.table.SetRows(nil)
		return
	}

	entries, err := m.history.RecentAttempts(m.historySize)
	if err != nil {
		m.logger.Warn("failed to load attempt history", "error", err)
		entries = nil
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		result := "wrong"
		if e.Correct {
			result = "ok"
		}
		rows = append(rows, table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Target.String(),
			e.Selected.String(),
			result,
		})
	}
	m.table.SetRows(rows)

	stats, err := m.history.Stats()
	if err != nil {
		m.logger.Warn("failed to load attempt stats", "error", err)
		return
	}
	m.stats = stats
}

// Init implements tea.Model.
func (m AdminModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the administration screen.
func (m AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Map(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m AdminModel) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.row = (m.row - 1 + adminRowCount) % adminRowCount

	case core.ActionDown:
		m.row = (m.row + 1) % adminRowCount

	case core.ActionLeft:
		m.adjust(-1)

	case core.ActionRight, core.ActionConfirm:
		m.adjust(1)
	}
	return m, nil
}

// adjust moves the value of the focused row by dir steps.
func (m *AdminModel) adjust(dir int) {
	switch m.row {
	case adminRowVolume:
		m.audio.SetVolume(float64(m.audio.Volume() + dir*m.step))

	case adminRowTarget:
		colors := m.state.AllColors()
		idx := 0
		for i, c := range colors {
			if c == m.state.Target() {
				idx = i
				break
			}
		}
		next := colors[(idx+dir+len(colors))%len(colors)]
		if err := m.state.SetTarget(next); err != nil {
			m.logger.Warn("failed to set target", "color", next, "error", err)
		}
	}
}

// View renders the administration screen.
func (m AdminModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A D M I N I S T R A T I O N"), m.width))
	b.WriteString("\n\n")

	volume := fmt.Sprintf("%s Volume  %s %3d",
		m.cursorMark(adminRowVolume),
		m.bar.ViewAs(m.audio.VolumeFraction()),
		m.audio.Volume())
	b.WriteString(centerText(volume, m.width))
	b.WriteString("\n\n")

	target := lipgloss.JoinHorizontal(lipgloss.Center,
		fmt.Sprintf("%s Target  ", m.cursorMark(adminRowTarget)),
		swatch(m.state.Target(), 4, 1),
		" "+m.state.Target().String())
	b.WriteString(centerText(target, m.width))
	b.WriteString("\n\n")

	if m.history != nil {
		stats := fmt.Sprintf("Attempts: %d  |  Correct: %d  |  Accuracy: %.0f%%  |  Sessions: %d",
			m.stats.Attempts, m.stats.Correct, m.stats.Accuracy()*100, m.stats.Sessions)
		b.WriteString(centerText(mutedStyle.Render(stats), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.table.View(), m.width))
		b.WriteString("\n\n")
	} else {
		b.WriteString(centerText(mutedStyle.Render("History not available"), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(mutedStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m AdminModel) cursorMark(row int) string {
	if m.row == row {
		return "▶"
	}
	return " "
}

// Row returns the focused row index.
func (m AdminModel) Row() int {
	return m.row
}

// IsQuitting returns true if user requested to quit.
func (m AdminModel) IsQuitting() bool {
	return m.quitting
}
