// Package exercise holds the frame-color matching state: the closed set of
// frame colors, the user's current pick and the target color of the round.
// It has no dependency on the terminal, audio or storage layers.
package exercise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned when a value is not one of the frame colors.
var ErrUnknownColor = errors.New("exercise: unknown frame color")

// FrameColor identifies one of the frame colors of the exercise.
// The zero value FrameColorNone means "no color" and is never part of the set.
type FrameColor int

const (
	FrameColorNone FrameColor = iota
	FrameColorBlue
	FrameColorYellow
	FrameColorGreen
)

// frameColors lists the members of the set in declaration order.
var frameColors = [...]FrameColor{
	FrameColorBlue,
	FrameColorYellow,
	FrameColorGreen,
}

// AllFrameColors returns every frame color in declaration order.
// The returned slice is a fresh copy on every call.
func AllFrameColors() []FrameColor {
	out := make([]FrameColor, len(frameColors))
	copy(out, frameColors[:])
	return out
}

// Valid reports whether c is a member of the frame color set.
func (c FrameColor) Valid() bool {
	return c >= FrameColorBlue && c <= FrameColorGreen
}

// String returns the lowercase color name.
func (c FrameColor) String() string {
	switch c {
	case FrameColorNone:
		return "none"
	case FrameColorBlue:
		return "blue"
	case FrameColorYellow:
		return "yellow"
	case FrameColorGreen:
		return "green"
	default:
		return fmt.Sprintf("FrameColor(%d)", int(c))
	}
}

// Hex returns the color value as "#rrggbb", or "" for values outside the set.
func (c FrameColor) Hex() string {
	switch c {
	case FrameColorBlue:
		return "#5493b4"
	case FrameColorYellow:
		return "#ffde59"
	case FrameColorGreen:
		return "#93bc39"
	default:
		return ""
	}
}

// ParseFrameColor accepts a color name ("blue") or its hex value ("#5493b4"),
// case-insensitively.
func ParseFrameColor(s string) (FrameColor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range frameColors {
		if s == c.String() || s == c.Hex() {
			return c, nil
		}
	}
	return FrameColorNone, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
