package exercise

import "fmt"

// DefaultTarget is the target color of a freshly created State.
const DefaultTarget = FrameColorBlue

// Field names the State field touched by a Change.
type Field int

const (
	FieldSelected Field = iota
	FieldTarget
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldSelected:
		return "selected"
	case FieldTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Change describes a single field write that modified the State.
type Change struct {
	Field Field
	Old   FrameColor
	New   FrameColor
}

// Outcome is the result of checking the current pick against the target.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Nothing picked yet
	OutcomeSuccess                // Pick matches the target
	OutcomeWrong                  // Pick differs from the target
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSuccess:
		return "success"
	case OutcomeWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// State tracks one in-progress color-matching attempt.
//
// A process creates one State at startup and passes it to every consumer.
// State is not safe for concurrent use; it is owned by the UI update loop.
type State struct {
	selected FrameColor
	target   FrameColor

	listeners map[int]func(Change)
	nextID    int
}

// NewState creates a State with nothing selected and the given target.
// An invalid target falls back to DefaultTarget.
func NewState(target FrameColor) *State {
	if !target.Valid() {
		target = DefaultTarget
	}
	return &State{
		target:    target,
		listeners: make(map[int]func(Change)),
	}
}

// Selected returns the current pick and whether one is present.
func (s *State) Selected() (FrameColor, bool) {
	return s.selected, s.selected != FrameColorNone
}

// Target returns the color the user must match.
func (s *State) Target() FrameColor {
	return s.target
}

// SetSelected overwrites the current pick. FrameColorNone clears it.
func (s *State) SetSelected(c FrameColor) {
	old := s.selected
	s.selected = c
	s.notify(FieldSelected, old, c)
}

// Reset clears the current pick.
func (s *State) Reset() {
	s.SetSelected(FrameColorNone)
}

// SetTarget overwrites the target color. Values outside the frame color set
// are rejected and leave the target unchanged.
func (s *State) SetTarget(c FrameColor) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownColor, c)
	}
	old := s.target
	s.target = c
	s.notify(FieldTarget, old, c)
	return nil
}

// IsCorrect reports whether a color is picked and it equals the target.
func (s *State) IsCorrect() bool {
	return s.selected != FrameColorNone && s.selected == s.target
}

// Check classifies the current pick.
func (s *State) Check() Outcome {
	switch {
	case s.selected == FrameColorNone:
		return OutcomeNone
	case s.IsCorrect():
		return OutcomeSuccess
	default:
		return OutcomeWrong
	}
}

// AllColors returns every frame color in declaration order.
func (s *State) AllColors() []FrameColor {
	return AllFrameColors()
}

// Subscribe registers fn to be called synchronously after every write that
// changes a field. The returned function removes the subscription.
func (s *State) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *State) notify(f Field, old, cur FrameColor) {
	if old == cur {
		return
	}
	ch := Change{Field: f, Old: old, New: cur}
	for _, id := range s.listenerIDs() {
		if fn, ok := s.listeners[id]; ok {
			fn(ch)
		}
	}
}

// listenerIDs returns subscription ids in registration order, so listeners
// may unsubscribe while being notified.
func (s *State) listenerIDs() []int {
	ids := make([]int, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if _, ok := s.listeners[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
