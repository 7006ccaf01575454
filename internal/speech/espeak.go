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

// espeak defaults used to map the rate and pitch multipliers to flags.
const (
	espeakBaseRate  = 175 // words per minute at -s
	espeakBasePitch = 50  // 0-99 scale at -p
)

// EspeakEngine speaks through espeak-ng (or classic espeak).
type EspeakEngine struct {
	binary string
	logger *slog.Logger
}

// NewEspeakEngine creates an engine backed by the given espeak binary.
// The logger may be nil.
func NewEspeakEngine(binary string, logger *slog.Logger) *EspeakEngine {
	if binary == "" {
		binary = "espeak-ng"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EspeakEngine{binary: binary, logger: logger}
}

// Name returns the engine identifier.
func (e *EspeakEngine) Name() string {
	return e.binary
}

// Voices lists the Spanish voices espeak reports via --voices=es.
func (e *EspeakEngine) Voices(ctx context.Context) ([]Voice, error) {
	cmd := exec.CommandContext(ctx, e.binary, "--voices=es")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger.Error("espeak voice listing failed", "error", err, "stderr", stderr.String())
		return nil, fmt.Errorf("listing espeak voices: %w", err)
	}

	return parseEspeakVoices(stdout.String()), nil
}

// parseEspeakVoices parses `espeak --voices=es` output. Lines look like
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  es              --/M      Spanish_(Spain)    roa/es
//	 5  es-419          --/M      Spanish_(Latin_America)  roa/es-419
//
// The File column becomes the voice ID; several voices can share a language
// tag, so playback must select by file, not tag.
func parseEspeakVoices(out string) []Voice {
	var voices []Voice

	for i, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if i == 0 || len(fields) < 5 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}

		voices = append(voices, Voice{
			Name: strings.ReplaceAll(fields[3], "_", " "),
			Lang: fields[1],
			ID:   fields[4],
		})
	}

	return voices
}

// espeakArgs builds the espeak invocation for a request. The voice flag
// prefers the voice's file ID so that same-language voices stay distinct.
func espeakArgs(req SpeakRequest) []string {
	rate := req.Rate
	if rate <= 0 {
		rate = 1.0
	}
	pitch := req.Pitch
	if pitch <= 0 {
		pitch = 1.0
	}

	args := []string{
		"-s", strconv.Itoa(int(math.Round(rate * espeakBaseRate))),
		"-p", strconv.Itoa(int(math.Round(pitch * espeakBasePitch))),
	}

	voice := req.Voice.ID
	if voice == "" {
		voice = req.Voice.Lang
	}
	if voice != "" {
		args = append(args, "-v", voice)
	}

	return append(args, req.Text)
}

// Speak plays the request through espeak.
func (e *EspeakEngine) Speak(ctx context.Context, req SpeakRequest) error {
	if req.Text == "" {
		return nil
	}

	args := espeakArgs(req)

	e.logger.Debug("running espeak", "binary", e.binary, "voice", req.Voice.ID)

	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		e.logger.Error("espeak failed", "error", err, "stderr", stderr.String())
		return fmt.Errorf("speaking with %s: %w", e.binary, err)
	}

	return nil
}
