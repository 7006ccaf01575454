package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPayload = `{
	"word": "ventana",
	"englishMeaning": "window",
	"etymology": "From Latin ventus (wind), as windows let the wind in.",
	"relatedEnglishWords": ["vent", "ventilation"],
	"mnemonic": "A window lets the VENT in.",
	"sampleSentences": [
		{"spanish": "Abre la ventana.", "english": "Open the window."}
	],
	"confidence": "high",
	"languageFamily": "Romance (Latin)",
	"pronunciation": "ben-TA-na"
}`

func TestNormalize_FullPayload(t *testing.T) {
	rec, err := Normalize(fullPayload, "ventana")
	require.NoError(t, err)

	assert.Equal(t, "ventana", rec.Word)
	assert.Equal(t, "window", rec.EnglishMeaning)
	assert.Equal(t, []string{"vent", "ventilation"}, rec.RelatedEnglishWords)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.Equal(t, "Romance (Latin)", rec.LanguageFamily)
	assert.Equal(t, "ben-TA-na", rec.Pronunciation)
	require.Len(t, rec.SampleSentences, 1)
	assert.Equal(t, "Abre la ventana.", rec.SampleSentences[0].Spanish)
}

func TestNormalize_FencedEqualsUnfenced(t *testing.T) {
	fenced := "```json\n" + fullPayload + "\n```"

	plain, err := Normalize(fullPayload, "ventana")
	require.NoError(t, err)
	wrapped, err := Normalize(fenced, "ventana")
	require.NoError(t, err)

	assert.Equal(t, plain, wrapped)
}

func TestNormalize_BareFence(t *testing.T) {
	fenced := "```\n" + fullPayload + "\n```"
	rec, err := Normalize(fenced, "ventana")
	require.NoError(t, err)
	assert.Equal(t, "window", rec.EnglishMeaning)
}

func TestNormalize_Defaults(t *testing.T) {
	rec, err := Normalize(`{"word": "casa", "englishMeaning": "house"}`, " casa ")
	require.NoError(t, err)

	assert.NotNil(t, rec.RelatedEnglishWords)
	assert.Empty(t, rec.RelatedEnglishWords)
	assert.NotNil(t, rec.SampleSentences)
	assert.Empty(t, rec.SampleSentences)
	assert.Equal(t, ConfidenceMedium, rec.Confidence)
	assert.Equal(t, "Romance", rec.LanguageFamily)
	assert.Equal(t, "casa", rec.Pronunciation)
}

func TestNormalize_UnrecognizedConfidence(t *testing.T) {
	rec, err := Normalize(`{"word": "sol", "confidence": "certain"}`, "sol")
	require.NoError(t, err)
	assert.Equal(t, ConfidenceMedium, rec.Confidence)
}

func TestNormalize_NonSequenceFieldsDegradeToEmpty(t *testing.T) {
	rec, err := Normalize(`{
		"word": "luz",
		"relatedEnglishWords": "lucid",
		"sampleSentences": 42
	}`, "luz")
	require.NoError(t, err)

	assert.Empty(t, rec.RelatedEnglishWords)
	assert.Empty(t, rec.SampleSentences)
}

func TestNormalize_Malformed(t *testing.T) {
	_, err := Normalize("I cannot answer that.", "casa")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNormalize_EmptyRequiredFieldsPassThrough(t *testing.T) {
	rec, err := Normalize(`{"word": "", "englishMeaning": "", "etymology": "", "mnemonic": ""}`, "mar")
	require.NoError(t, err)
	// Required strings are not validated or backfilled.
	assert.Empty(t, rec.Word)
	assert.Empty(t, rec.EnglishMeaning)
	// The input term still backs the pronunciation default.
	assert.Equal(t, "mar", rec.Pronunciation)
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFence(tt.in))
		})
	}
}

func TestPlainText(t *testing.T) {
	rec, err := Normalize(fullPayload, "ventana")
	require.NoError(t, err)

	text := rec.PlainText()
	assert.Contains(t, text, "ventana\n")
	assert.Contains(t, text, "Meaning: window")
	assert.Contains(t, text, "Etymology: From Latin ventus")
	assert.Contains(t, text, "Related English words: vent, ventilation")
	assert.Contains(t, text, "Mnemonic: A window lets the VENT in.")
	assert.Contains(t, text, "- Abre la ventana. (Open the window.)")
}

func TestPlainText_OmitsEmptySections(t *testing.T) {
	rec, err := Normalize(`{"word": "casa", "englishMeaning": "house"}`, "casa")
	require.NoError(t, err)

	text := rec.PlainText()
	assert.NotContains(t, text, "Related English words")
	assert.NotContains(t, text, "Sample sentences")
}
