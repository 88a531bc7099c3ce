package exercise

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is one checked pick.
type Attempt struct {
	SessionID string
	Target    FrameColor
	Selected  FrameColor
	Outcome   Outcome
	At        time.Time
}

// AttemptRecorder stores checked picks. Implemented by the storage layer.
type AttemptRecorder interface {
	RecordAttempt(a Attempt) error
}

// Session drives rounds of the exercise on top of a shared State.
// It counts attempts and forwards them to an optional recorder.
type Session struct {
	id       string
	state    *State
	rounds   *Rounds
	recorder AttemptRecorder
	now      func() time.Time

	attempts  int
	successes int
}

// NewSession creates a session with a fresh random id.
// rounds and recorder may be nil.
func NewSession(state *State, rounds *Rounds, recorder AttemptRecorder) *Session {
	if rounds == nil {
		rounds = NewRounds(RoundFixed, 0)
	}
	return &Session{
		id:       uuid.NewString(),
		state:    state,
		rounds:   rounds,
		recorder: recorder,
		now:      time.Now,
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// State returns the selection state the session operates on.
func (s *Session) State() *State {
	return s.state
}

// Pick selects c and checks it against the target.
// The attempt is recorded when a recorder is set; a recorder error is
// returned alongside the outcome, which is valid regardless.
func (s *Session) Pick(c FrameColor) (Outcome, error) {
	s.state.SetSelected(c)
	outcome := s.state.Check()
	if outcome == OutcomeNone {
		return outcome, nil
	}

	s.attempts++
	if outcome == OutcomeSuccess {
		s.successes++
	}

	if s.recorder == nil {
		return outcome, nil
	}
	err := s.recorder.RecordAttempt(Attempt{
		SessionID: s.id,
		Target:    s.state.Target(),
		Selected:  c,
		Outcome:   outcome,
		At:        s.now(),
	})
	return outcome, err
}

// NextRound clears the pick and moves the target according to the round mode.
func (s *Session) NextRound() {
	s.state.Reset()
	next := s.rounds.Next(s.state.Target())
	//nolint:errcheck // Rounds only yields members of the color set
	s.state.SetTarget(next)
}

// Attempts returns the number of checked picks in this session.
func (s *Session) Attempts() int {
	return s.attempts
}

// Successes returns the number of correct picks in this session.
func (s *Session) Successes() int {
	return s.successes
}
