package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionConfirm, "Confirm"},
		{ActionReset, "Reset"},
		{ActionNextScreen, "NextScreen"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestEffectiveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	if cfg.EffectiveSeed() != 42 {
		t.Errorf("Expected explicit seed 42, got %d", cfg.EffectiveSeed())
	}

	cfg.Seed = 0
	if cfg.EffectiveSeed() == 0 {
		t.Error("Expected time-based seed when Seed is 0")
	}
}
