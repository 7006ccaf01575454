// Package speech provides Spanish voice discovery and word playback through
// host text-to-speech engines.
package speech

import "strings"

// Voice is one entry of a host voice catalog.
type Voice struct {
	// Name is the display name, e.g. "Mónica".
	Name string
	// Lang is the BCP-47 language tag, e.g. "es-ES". Engines normalize
	// underscore separators to hyphens.
	Lang string
	// ID is the engine-level voice identifier used for playback. Several
	// voices may share a language tag, so playback selects by ID, not Lang.
	ID string
}

// FilterSpanish keeps voices whose language tag begins with "es" or whose
// name contains "spanish", case-insensitively.
func FilterSpanish(voices []Voice) []Voice {
	out := make([]Voice, 0, len(voices))
	for _, v := range voices {
		lang := strings.ToLower(v.Lang)
		name := strings.ToLower(v.Name)
		if strings.HasPrefix(lang, "es") || strings.Contains(name, "spanish") {
			out = append(out, v)
		}
	}
	return out
}

// Select applies the automatic selection policy to an already-filtered
// catalog. In priority order: an es-US voice whose name contains "google",
// any es-US voice, the first voice, or nil when the catalog is empty.
func Select(voices []Voice) *Voice {
	for i := range voices {
		if voices[i].Lang == "es-US" && strings.Contains(strings.ToLower(voices[i].Name), "google") {
			return &voices[i]
		}
	}
	for i := range voices {
		if voices[i].Lang == "es-US" {
			return &voices[i]
		}
	}
	if len(voices) > 0 {
		return &voices[0]
	}
	return nil
}
