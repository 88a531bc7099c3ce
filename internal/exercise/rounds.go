package exercise

import (
	"fmt"
	"math/rand"
)

// RoundMode controls how the target changes between rounds.
type RoundMode string

const (
	RoundFixed  RoundMode = "fixed"  // Target never changes on its own
	RoundRandom RoundMode = "random" // Random target, never the same twice in a row
	RoundCycle  RoundMode = "cycle"  // Next color in declaration order
)

// ParseRoundMode validates a round mode name. Empty means RoundFixed.
func ParseRoundMode(s string) (RoundMode, error) {
	switch RoundMode(s) {
	case "", RoundFixed:
		return RoundFixed, nil
	case RoundRandom, RoundCycle:
		return RoundMode(s), nil
	default:
		return RoundFixed, fmt.Errorf("exercise: unknown round mode %q", s)
	}
}

// Rounds picks the target color of the next round.
type Rounds struct {
	mode RoundMode
	rng  *rand.Rand
}

// NewRounds creates a round picker. The seed makes random mode reproducible.
func NewRounds(mode RoundMode, seed int64) *Rounds {
	return &Rounds{
		mode: mode,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Mode returns the round mode.
func (r *Rounds) Mode() RoundMode {
	return r.mode
}

// Next returns the target that follows current.
func (r *Rounds) Next(current FrameColor) FrameColor {
	colors := AllFrameColors()

	switch r.mode {
	case RoundCycle:
		for i, c := range colors {
			if c == current {
				return colors[(i+1)%len(colors)]
			}
		}
		return colors[0]

	case RoundRandom:
		candidates := make([]FrameColor, 0, len(colors))
		for _, c := range colors {
			if c != current {
				candidates = append(candidates, c)
			}
		}
		return candidates[r.rng.Intn(len(candidates))]

	default:
		if !current.Valid() {
			return DefaultTarget
		}
		return current
	}
}
