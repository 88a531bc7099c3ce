package feedback

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/exercise"
)

// VolumeSource provides the playback gain in [0, 1].
type VolumeSource interface {
	VolumeFraction() float64
}

// Player plays feedback tones on the default audio device.
// Without a usable device it stays silent.
type Player struct {
	synth  *Synth
	volume VolumeSource
	assets Assets
	logger *log.Logger

	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(synth *Synth, volume VolumeSource, sounds config.SoundsConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		synth:  synth,
		volume: volume,
		assets: NewAssets(sounds),
		logger: logger,
	}
}

// Init opens the audio device. Failure is logged and leaves the player
// silent; it is never fatal.
func (p *Player) Init() {
	if p.initialized || p.muted {
		return
	}
	rate := p.synth.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, feedback will be silent", "error", err)
		return
	}
	p.initialized = true
}

// SetMuted disables playback.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Enabled reports whether Play produces sound.
func (p *Player) Enabled() bool {
	return p.initialized && !p.muted
}

// Play queues the sound for outcome at the current volume. The configured
// asset is preferred; the synthesized tone is used when it cannot be opened.
// Returns false if nothing was played.
func (p *Player) Play(outcome exercise.Outcome) bool {
	if !p.Enabled() {
		return false
	}
	fraction := p.volume.VolumeFraction()

	asset, release, err := p.assets.Open(outcome, p.synth.SampleRate())
	if err == nil {
		speaker.Play(beep.Seq(scale(asset, fraction), beep.Callback(release)))
		return true
	}
	if !errors.Is(err, ErrNoAsset) {
		p.logger.Debug("asset unavailable, using tone", "outcome", outcome, "error", err)
	}

	s := p.synth.Sound(outcome, fraction)
	if s == nil {
		return false
	}
	speaker.Play(s)
	return true
}

// Close releases the audio device.
func (p *Player) Close() {
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
