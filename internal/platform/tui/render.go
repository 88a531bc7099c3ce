package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frame-color/internal/exercise"
)

// Frame layout constants
const (
	frameWidth  = 12
	frameHeight = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#93bc39"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e05a47"))
)

// swatch renders a solid block in the frame color.
func swatch(c exercise.FrameColor, width, height int) string {
	if !c.Valid() {
		return strings.Repeat(" ", width)
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Join(lines, "\n"))
}

// renderFrame draws one selectable frame. The highlighted frame gets a thick
// border, the picked one a double border.
func renderFrame(c exercise.FrameColor, highlighted, picked bool) string {
	border := lipgloss.RoundedBorder()
	borderColor := lipgloss.Color("240")
	switch {
	case picked:
		border = lipgloss.DoubleBorder()
		borderColor = lipgloss.Color("229")
	case highlighted:
		border = lipgloss.ThickBorder()
		borderColor = lipgloss.Color("255")
	}

	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Render(swatch(c, frameWidth, frameHeight))

	label := lipgloss.PlaceHorizontal(frameWidth+2, lipgloss.Center, c.String())
	return lipgloss.JoinVertical(lipgloss.Center, box, label)
}

// renderFrames lays out every color side by side.
func renderFrames(colors []exercise.FrameColor, cursor int, picked exercise.FrameColor) string {
	parts := make([]string, 0, len(colors)*2)
	for i, c := range colors {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, renderFrame(c, i == cursor, c == picked))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
