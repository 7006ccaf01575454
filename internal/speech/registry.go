package speech

import (
	"context"
	"fmt"
	"sync"
)

// Registry tracks the filtered Spanish voice catalog and the current
// selection. The host catalog may load or change at any time after startup,
// so Refresh is safe to call repeatedly; it re-applies the automatic
// selection policy but never overrides a manual selection that is still in
// the catalog.
type Registry struct {
	mu       sync.RWMutex
	engine   Engine
	voices   []Voice
	selected *Voice
	manual   bool
}

// NewRegistry creates a registry over the given engine. A nil engine yields
// a registry with an empty catalog whose playback is a no-op.
func NewRegistry(engine Engine) *Registry {
	return &Registry{engine: engine}
}

// Engine returns the underlying engine, or nil.
func (r *Registry) Engine() Engine {
	return r.engine
}

// Refresh re-enumerates the engine's catalog, filters it to Spanish voices
// and re-runs the automatic selection policy. Idempotent: refreshing an
// unchanged catalog leaves the selection unchanged.
func (r *Registry) Refresh(ctx context.Context) error {
	if r.engine == nil {
		return nil
	}

	all, err := r.engine.Voices(ctx)
	if err != nil {
		return fmt.Errorf("refreshing voice catalog: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.voices = FilterSpanish(all)

	if r.manual && r.selected != nil {
		for i := range r.voices {
			if r.voices[i] == *r.selected {
				r.selected = &r.voices[i]
				return nil
			}
		}
		// The manually chosen voice left the catalog; fall back to the
		// automatic policy.
		r.manual = false
	}

	r.selected = Select(r.voices)
	return nil
}

// Voices returns a copy of the filtered catalog.
func (r *Registry) Voices() []Voice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Voice, len(r.voices))
	copy(out, r.voices)
	return out
}

// Selected returns the current voice, if any.
func (r *Registry) Selected() (Voice, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.selected == nil {
		return Voice{}, false
	}
	return *r.selected, true
}

// SelectVoice marks the named catalog voice as a manual selection, which
// survives later automatic refreshes.
func (r *Registry) SelectVoice(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.voices {
		if r.voices[i].Name == name {
			r.selected = &r.voices[i]
			r.manual = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrVoiceNotFound, name)
}

// ClearManual drops a manual selection and re-runs the automatic policy.
func (r *Registry) ClearManual() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.manual = false
	r.selected = Select(r.voices)
}

// Speak pronounces text with the selected voice at the fixed playback rate
// and pitch. It is a no-op when no engine or no voice is available.
func (r *Registry) Speak(ctx context.Context, text string) error {
	r.mu.RLock()
	engine := r.engine
	selected := r.selected
	r.mu.RUnlock()

	if engine == nil || selected == nil || text == "" {
		return nil
	}

	return engine.Speak(ctx, SpeakRequest{
		Text:  text,
		Voice: *selected,
		Rate:  PlaybackRate,
		Pitch: PlaybackPitch,
	})
}
