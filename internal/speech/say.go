package speech

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// say's default speaking rate in words per minute, used to map the rate
// multiplier to the -r flag.
const sayBaseRate = 175

// SayEngine speaks through the macOS `say` command.
type SayEngine struct {
	binary string
	logger *slog.Logger
}

// NewSayEngine creates an engine backed by `say`. The logger may be nil.
func NewSayEngine(logger *slog.Logger) *SayEngine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SayEngine{binary: "say", logger: logger}
}

// Name returns the engine identifier.
func (e *SayEngine) Name() string {
	return "say"
}

// Voices lists the voices `say -v ?` reports.
func (e *SayEngine) Voices(ctx context.Context) ([]Voice, error) {
	cmd := exec.CommandContext(ctx, e.binary, "-v", "?")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger.Error("say voice listing failed", "error", err, "stderr", stderr.String())
		return nil, fmt.Errorf("listing say voices: %w", err)
	}

	return parseSayVoices(stdout.String()), nil
}

// parseSayVoices parses `say -v ?` output. Each line looks like
//
//	Mónica              es_ES    # ¡Hola! Me llamo Mónica.
//
// Voice names may contain spaces; the language tag is the last field before
// the sample comment.
func parseSayVoices(out string) []Voice {
	var voices []Voice

	for _, line := range strings.Split(out, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		lang := fields[len(fields)-1]
		if !looksLikeLangTag(lang) {
			continue
		}

		name := strings.Join(fields[:len(fields)-1], " ")
		voices = append(voices, Voice{
			Name: name,
			Lang: strings.ReplaceAll(lang, "_", "-"),
			ID:   name,
		})
	}

	return voices
}

// looksLikeLangTag reports whether s has the shape of a locale identifier
// such as "es_ES" or "es-419".
func looksLikeLangTag(s string) bool {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(parts) < 2 {
		return false
	}
	primary := parts[0]
	if len(primary) < 2 || len(primary) > 3 {
		return false
	}
	for _, r := range primary {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Speak plays the request through `say`. The pitch multiplier is ignored:
// say has no pitch flag.
func (e *SayEngine) Speak(ctx context.Context, req SpeakRequest) error {
	if req.Text == "" {
		return nil
	}

	rate := req.Rate
	if rate <= 0 {
		rate = 1.0
	}
	wpm := int(math.Round(rate * sayBaseRate))

	args := []string{"-r", strconv.Itoa(wpm)}
	voice := req.Voice.ID
	if voice == "" {
		voice = req.Voice.Name
	}
	if voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args, req.Text)

	e.logger.Debug("running say", "voice", req.Voice.Name, "wpm", wpm)

	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		e.logger.Error("say failed", "error", err, "stderr", stderr.String())
		return fmt.Errorf("speaking with say: %w", err)
	}

	return nil
}
