// Package tui provides the Bubble Tea screens of the frame-color exercise.
// It handles the terminal UI loop, input mapping and screen routing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/frame-color/internal/config"
)

// HintMsg toggles the pointing-hand hint. Messages from an older
// generation are ignored so a restarted cycle never doubles up.
type HintMsg struct {
	Gen int
}

// NextRoundMsg starts the next round after a correct pick.
type NextRoundMsg struct {
	Round int
}

// ConfigMsg carries a reloaded configuration.
type ConfigMsg struct {
	Config config.Config
}

// hintCmd schedules the next hint toggle.
func hintCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HintMsg{Gen: gen}
	})
}

// nextRoundCmd schedules the start of the next round.
func nextRoundCmd(d time.Duration, round int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NextRoundMsg{Round: round}
	})
}
