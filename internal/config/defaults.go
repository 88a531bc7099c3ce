package config

import (
	_ "embed"
)

//go:embed defaults/framecolor.yaml
var defaultYAML []byte

// Hint blink durations of the pointing hand, in milliseconds.
const (
	HandVisibleDurationMS = 3000
	HandHiddenDurationMS  = 2000
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Exercise: ExerciseConfig{
			Target:    "blue",
			RoundMode: "fixed",
			Hint: HintConfig{
				VisibleMS: HandVisibleDurationMS,
				HiddenMS:  HandHiddenDurationMS,
			},
		},
		Sounds: SoundsConfig{
			Success:    "assets/sounds/good-job.mp3",
			Wrong:      "assets/sounds/try-again.mp3",
			SampleRate: 44100,
			SuccessTone: ToneConfig{
				Frequencies: []float64{987.77, 1318.51}, // B5, E6
				NoteMS:      120,
			},
			WrongTone: ToneConfig{
				Frequencies: []float64{196.0, 146.83}, // G3, D3
				NoteMS:      180,
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.framecolor/framecolor.db",
		},
		UI: UIConfig{
			VolumeStep:  5,
			HistorySize: 50,
		},
	}
}
