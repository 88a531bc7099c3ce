package core

// Action represents a semantic UI action, abstracted from physical key presses.
// Screens react to intents rather than raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, H - previous frame / lower volume
	ActionRight             // Right arrow, L - next frame / raise volume
	ActionUp                // Up arrow, K - previous row
	ActionDown              // Down arrow, J - next row
	ActionConfirm           // Enter, Space - pick the highlighted frame
	ActionReset             // R - clear the current pick
	ActionNextScreen        // Tab - switch route
	ActionBack              // Esc, B - back to the exercise
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionReset:
		return "Reset"
	case ActionNextScreen:
		return "NextScreen"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
