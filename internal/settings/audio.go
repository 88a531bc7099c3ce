// Package settings keeps user preferences in memory and mirrors them into a
// durable key-value store.
package settings

import (
	"encoding/json"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// AudioSettingsKey is the durable key holding the serialized audio settings.
const AudioSettingsKey = "audioSettings"

// Volume bounds, in percent.
const (
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 50
)

// KV is a durable string key-value store.
// Get reports ok=false when the key is absent.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// AudioSettings is the persisted audio settings record.
type AudioSettings struct {
	Volume int `json:"volume"`
}

// storedAudioSettings distinguishes a missing volume field from zero.
type storedAudioSettings struct {
	Volume *float64 `json:"volume"`
}

// AudioStore holds the audio volume and keeps its durable copy in sync.
// Not safe for concurrent use.
type AudioStore struct {
	kv     KV
	logger *log.Logger
	volume int

	listeners map[int]func(volume int)
	nextID    int
}

// NewAudioStore creates the store and hydrates it from kv once.
// A nil logger discards log output.
func NewAudioStore(kv KV, logger *log.Logger) *AudioStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &AudioStore{
		kv:        kv,
		logger:    logger,
		volume:    DefaultVolume,
		listeners: make(map[int]func(int)),
	}
	s.Hydrate()
	return s
}

// Volume returns the volume in percent, within [MinVolume, MaxVolume].
func (s *AudioStore) Volume() int {
	return s.volume
}

// VolumeFraction returns the volume as a fraction in [0, 1].
func (s *AudioStore) VolumeFraction() float64 {
	return float64(s.volume) / 100
}

// Settings returns the current settings record.
func (s *AudioStore) Settings() AudioSettings {
	return AudioSettings{Volume: s.volume}
}

// SetVolume clamps v into [MinVolume, MaxVolume], stores it and persists
// the settings. Fractions round to the nearest integer; NaN counts as 0.
func (s *AudioStore) SetVolume(v float64) {
	s.setVolume(ClampVolume(v))
	s.Persist()
}

// Persist writes the settings record to the durable store.
// Failures are logged; the in-memory value stays authoritative.
func (s *AudioStore) Persist() {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(s.Settings())
	if err != nil {
		s.logger.Warn("failed to encode audio settings", "error", err)
		return
	}
	if err := s.kv.Set(AudioSettingsKey, string(data)); err != nil {
		s.logger.Warn("failed to save audio settings", "key", AudioSettingsKey, "error", err)
	}
}

// Hydrate loads the settings record from the durable store.
// A missing, unreadable or null record leaves the volume unchanged; a record
// without a volume field resets it to DefaultVolume.
func (s *AudioStore) Hydrate() {
	if s.kv == nil {
		return
	}
	raw, ok, err := s.kv.Get(AudioSettingsKey)
	if err != nil {
		s.logger.Warn("failed to load audio settings", "key", AudioSettingsKey, "error", err)
		return
	}
	if !ok {
		return
	}

	var stored *storedAudioSettings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("failed to parse audio settings", "key", AudioSettingsKey, "error", err)
		return
	}
	if stored == nil {
		s.logger.Warn("failed to parse audio settings", "key", AudioSettingsKey, "error", "record is null")
		return
	}
	if stored.Volume == nil {
		s.setVolume(DefaultVolume)
		return
	}

	v := ClampVolume(*stored.Volume)
	if float64(v) != *stored.Volume {
		s.logger.Warn("stored volume adjusted", "stored", *stored.Volume, "volume", v)
	}
	s.setVolume(v)
}

// Subscribe registers fn to be called synchronously after the volume changes.
// The returned function removes the subscription.
func (s *AudioStore) Subscribe(fn func(volume int)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *AudioStore) setVolume(v int) {
	if v == s.volume {
		return
	}
	s.volume = v
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			fn(v)
		}
	}
}

// ClampVolume rounds v and bounds it to [MinVolume, MaxVolume].
func ClampVolume(v float64) int {
	if math.IsNaN(v) {
		return MinVolume
	}
	v = math.Round(v)
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return int(v)
}
