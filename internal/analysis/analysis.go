// Package analysis defines the etymology record for a Spanish word and the
// normalization of raw model output into it.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Confidence is the model's self-reported confidence in an analysis.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ErrMalformed is returned when the completion text cannot be parsed as an
// analysis record. It is distinct from upstream request errors so callers
// can tell a bad reply from a failed request.
var ErrMalformed = errors.New("malformed analysis response")

// SampleSentence is a Spanish example sentence with its English translation.
type SampleSentence struct {
	Spanish string `json:"spanish"`
	English string `json:"english"`
}

// Record is the normalized etymology analysis for a single word.
// After Normalize, every field is populated: slices are never nil and the
// defaulted fields always carry a value.
type Record struct {
	Word                string           `json:"word"`
	EnglishMeaning      string           `json:"englishMeaning"`
	Etymology           string           `json:"etymology"`
	RelatedEnglishWords []string         `json:"relatedEnglishWords"`
	Mnemonic            string           `json:"mnemonic"`
	SampleSentences     []SampleSentence `json:"sampleSentences"`
	Confidence          Confidence       `json:"confidence"`
	LanguageFamily      string           `json:"languageFamily"`
	Pronunciation       string           `json:"pronunciation"`
}

// payload mirrors Record but keeps the sequence fields raw, so a scalar
// where an array belongs degrades to an empty slice instead of failing
// the whole parse.
type payload struct {
	Word                string          `json:"word"`
	EnglishMeaning      string          `json:"englishMeaning"`
	Etymology           string          `json:"etymology"`
	RelatedEnglishWords json.RawMessage `json:"relatedEnglishWords"`
	Mnemonic            string          `json:"mnemonic"`
	SampleSentences     json.RawMessage `json:"sampleSentences"`
	Confidence          string          `json:"confidence"`
	LanguageFamily      string          `json:"languageFamily"`
	Pronunciation       string          `json:"pronunciation"`
}

// Normalize parses raw completion text into a Record, stripping an optional
// markdown code fence first and filling defaults for absent optional fields.
// word is the search term the analysis was requested for; it backs the
// pronunciation default.
func Normalize(raw, word string) (*Record, error) {
	text := StripFence(raw)

	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	word = strings.TrimSpace(word)

	rec := &Record{
		Word:                p.Word,
		EnglishMeaning:      p.EnglishMeaning,
		Etymology:           p.Etymology,
		RelatedEnglishWords: decodeStrings(p.RelatedEnglishWords),
		Mnemonic:            p.Mnemonic,
		SampleSentences:     decodeSentences(p.SampleSentences),
		LanguageFamily:      p.LanguageFamily,
		Pronunciation:       p.Pronunciation,
	}

	switch Confidence(p.Confidence) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		rec.Confidence = Confidence(p.Confidence)
	default:
		rec.Confidence = ConfidenceMedium
	}

	if rec.LanguageFamily == "" {
		rec.LanguageFamily = "Romance"
	}
	if rec.Pronunciation == "" {
		rec.Pronunciation = word
	}

	return rec, nil
}

// StripFence removes a surrounding markdown code fence, with an optional
// "json" language tag, from the completion text.
func StripFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimPrefix(t, "json")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

func decodeStrings(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	var ws []string
	if err := json.Unmarshal(raw, &ws); err != nil || ws == nil {
		return out
	}
	return ws
}

func decodeSentences(raw json.RawMessage) []SampleSentence {
	out := []SampleSentence{}
	if len(raw) == 0 {
		return out
	}
	var ss []SampleSentence
	if err := json.Unmarshal(raw, &ss); err != nil || ss == nil {
		return out
	}
	return ss
}

// PlainText renders the record in the layout used for clipboard copies:
// word, meaning, etymology, related words joined by commas, mnemonic, and
// sample sentences as bullet lines.
func (r *Record) PlainText() string {
	var b strings.Builder

	b.WriteString(r.Word)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Meaning: %s\n", r.EnglishMeaning)
	fmt.Fprintf(&b, "Etymology: %s\n", r.Etymology)
	if len(r.RelatedEnglishWords) > 0 {
		fmt.Fprintf(&b, "Related English words: %s\n", strings.Join(r.RelatedEnglishWords, ", "))
	}
	fmt.Fprintf(&b, "Mnemonic: %s\n", r.Mnemonic)
	if len(r.SampleSentences) > 0 {
		b.WriteString("Sample sentences:\n")
		for _, s := range r.SampleSentences {
			fmt.Fprintf(&b, "- %s (%s)\n", s.Spanish, s.English)
		}
	}

	return b.String()
}
