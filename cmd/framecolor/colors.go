package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frame-color/internal/exercise"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the frame colors",
	Long:  `Shows every frame color in display order with its hex value.`,
	Args:  cobra.NoArgs,
	Run:   runColors,
}

func runColors(_ *cobra.Command, _ []string) {
	colors := exercise.AllFrameColors()

	fmt.Println("Frame colors:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range colors {
		if len(c.String()) > maxNameLen {
			maxNameLen = len(c.String())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s\n", maxNameLen, "Name", "Hex")
	fmt.Printf("  %-*s  %-7s\n", maxNameLen, "----", "---")

	for _, c := range colors {
		sample := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		marker := ""
		if c == exercise.DefaultTarget {
			marker = " (default target)"
		}
		fmt.Printf("  %-*s  %-7s  %s%s\n", maxNameLen, c, c.Hex(), sample, marker)
	}

	fmt.Println()
	fmt.Println("Run 'framecolor exercise --target <name>' to start with another target.")
}
