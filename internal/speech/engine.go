package speech

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

// Playback parameters for word pronunciation. Rate is a multiplier of the
// engine's normal speaking rate, pitch a multiplier of its normal pitch.
const (
	PlaybackRate  = 0.8
	PlaybackPitch = 1.0
)

var (
	// ErrVoiceNotFound is returned when a named voice is not in the catalog.
	ErrVoiceNotFound = errors.New("voice not found")
	// ErrNoEngine is returned by operations that need a speech engine when
	// none is available on the host.
	ErrNoEngine = errors.New("no speech engine available")
)

// SpeakRequest contains parameters for speech playback.
type SpeakRequest struct {
	Text  string
	Voice Voice
	Rate  float64
	Pitch float64
}

// Engine enumerates host voices and plays synthesized speech.
type Engine interface {
	// Name returns the engine identifier.
	Name() string
	// Voices lists the voices the host engine currently offers.
	Voices(ctx context.Context) ([]Voice, error)
	// Speak plays the request's text aloud and returns once playback ends.
	Speak(ctx context.Context, req SpeakRequest) error
}

// DetectEngine returns the first speech engine available on this host, or
// nil when there is none. The logger may be nil.
func DetectEngine(logger *slog.Logger) Engine {
	if _, err := exec.LookPath("say"); err == nil {
		return NewSayEngine(logger)
	}
	if _, err := exec.LookPath("espeak-ng"); err == nil {
		return NewEspeakEngine("espeak-ng", logger)
	}
	if _, err := exec.LookPath("espeak"); err == nil {
		return NewEspeakEngine("espeak", logger)
	}
	return nil
}
