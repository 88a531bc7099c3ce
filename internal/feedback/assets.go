package feedback

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/frame-color/internal/config"
	"github.com/vovakirdan/frame-color/internal/exercise"
)

// ErrNoAsset is returned by Open when no file is configured for an outcome.
var ErrNoAsset = errors.New("feedback: no asset configured")

// Assets maps outcomes to the sound files shipped with the exercise.
type Assets map[exercise.Outcome]string

// NewAssets builds the lookup table from configuration.
func NewAssets(cfg config.SoundsConfig) Assets {
	return Assets{
		exercise.OutcomeSuccess: cfg.Success,
		exercise.OutcomeWrong:   cfg.Wrong,
	}
}

// Path returns the asset for outcome.
func (a Assets) Path(outcome exercise.Outcome) (string, bool) {
	p, ok := a[outcome]
	return p, ok && p != ""
}

// Open decodes the asset for outcome and resamples it to rate.
// The returned func releases the file and must be called once playback ends.
func (a Assets) Open(outcome exercise.Outcome, rate beep.SampleRate) (beep.Streamer, func(), error) {
	path, ok := a.Path(outcome)
	if !ok {
		return nil, nil, ErrNoAsset
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("feedback: open asset: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, nil, fmt.Errorf("feedback: unsupported asset format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("feedback: decode %s: %w", path, err)
	}

	closeFn := func() { stream.Close() }
	if format.SampleRate == rate {
		return stream, closeFn, nil
	}
	return beep.Resample(4, format.SampleRate, rate, stream), closeFn, nil
}
