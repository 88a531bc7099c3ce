// Package feedback produces the audible response to a checked pick.
// Configured sound files (mp3 or wav) are played when they can be opened;
// otherwise a tone is synthesized with beep. Both are scaled by the user's
// volume fraction.
package feedback

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/exercise"
)

// Synth builds feedback tones from the sounds configuration.
type Synth struct {
	cfg  config.SoundsConfig
	rate beep.SampleRate
}

// NewSynth creates a synth. Tone frequencies must be below half the sample rate.
func NewSynth(cfg config.SoundsConfig) (*Synth, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("feedback: invalid sample rate %d", cfg.SampleRate)
	}
	nyquist := float64(cfg.SampleRate) / 2
	for _, tone := range []config.ToneConfig{cfg.SuccessTone, cfg.WrongTone} {
		for _, f := range tone.Frequencies {
			if f <= 0 || f >= nyquist {
				return nil, fmt.Errorf("feedback: frequency %v out of range (0, %v)", f, nyquist)
			}
		}
	}
	return &Synth{cfg: cfg, rate: beep.SampleRate(cfg.SampleRate)}, nil
}

// SampleRate returns the rate the tones are generated at.
func (s *Synth) SampleRate() beep.SampleRate {
	return s.rate
}

// Sound returns the tone for outcome at the given volume fraction,
// or nil for OutcomeNone.
func (s *Synth) Sound(outcome exercise.Outcome, fraction float64) beep.Streamer {
	var tone config.ToneConfig
	switch outcome {
	case exercise.OutcomeSuccess:
		tone = s.cfg.SuccessTone
	case exercise.OutcomeWrong:
		tone = s.cfg.WrongTone
	default:
		return nil
	}
	return scale(s.sequence(tone), fraction)
}

// Length returns the number of samples of the tone for outcome.
func (s *Synth) Length(outcome exercise.Outcome) int {
	switch outcome {
	case exercise.OutcomeSuccess:
		return len(s.cfg.SuccessTone.Frequencies) * s.rate.N(s.cfg.SuccessTone.NoteDuration())
	case exercise.OutcomeWrong:
		return len(s.cfg.WrongTone.Frequencies) * s.rate.N(s.cfg.WrongTone.NoteDuration())
	default:
		return 0
	}
}

func (s *Synth) sequence(tone config.ToneConfig) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(tone.Frequencies))
	n := s.rate.N(tone.NoteDuration())
	for _, f := range tone.Frequencies {
		sine, err := generators.SineTone(s.rate, f)
		if err != nil {
			// Frequencies are validated in NewSynth
			notes = append(notes, beep.Silence(n))
			continue
		}
		notes = append(notes, beep.Take(n, sine))
	}
	return beep.Seq(notes...)
}

// scale applies a linear gain in [0, 1].
// math.Log2(0) is -Inf, so zero gain is rendered as silence.
func scale(s beep.Streamer, fraction float64) beep.Streamer {
	if fraction <= 0 || math.IsNaN(fraction) {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(fraction, 1)), Silent: false}
}
