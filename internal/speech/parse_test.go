package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSayVoices(t *testing.T) {
	out := `Alex                en_US    # Most people recognize me by my voice.
Mónica              es_ES    # ¡Hola! Me llamo Mónica.
Juan                es_MX    # ¡Hola! Me llamo Juan.
Reed (Spanish (Mexico)) es_MX    # ¡Hola! Me llamo Reed.
`

	voices := parseSayVoices(out)
	require.Len(t, voices, 4)

	assert.Equal(t, Voice{Name: "Alex", Lang: "en-US", ID: "Alex"}, voices[0])
	assert.Equal(t, Voice{Name: "Mónica", Lang: "es-ES", ID: "Mónica"}, voices[1])
	assert.Equal(t, Voice{Name: "Reed (Spanish (Mexico))", Lang: "es-MX", ID: "Reed (Spanish (Mexico))"}, voices[3])
}

func TestParseSayVoices_SkipsGarbage(t *testing.T) {
	out := "not a voice line\n\n   \n"
	assert.Empty(t, parseSayVoices(out))
}

func TestParseEspeakVoices(t *testing.T) {
	out := `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  es              --/M      Spanish_(Spain)    roa/es
 5  es-419          --/M      Spanish_(Latin_America) roa/es-419
 7  es              --/M      spanish-mbrola-1   mb/mb-es1
`

	voices := parseEspeakVoices(out)
	require.Len(t, voices, 3)

	assert.Equal(t, Voice{Name: "Spanish (Spain)", Lang: "es", ID: "roa/es"}, voices[0])
	assert.Equal(t, Voice{Name: "Spanish (Latin America)", Lang: "es-419", ID: "roa/es-419"}, voices[1])
	assert.Equal(t, Voice{Name: "spanish-mbrola-1", Lang: "es", ID: "mb/mb-es1"}, voices[2])
}

func TestEspeakArgs_SelectsVoiceByFileID(t *testing.T) {
	// Two voices share the "es" language tag; playback must address the
	// chosen one by its file, not its tag.
	args := espeakArgs(SpeakRequest{
		Text:  "ventana",
		Voice: Voice{Name: "spanish-mbrola-1", Lang: "es", ID: "mb/mb-es1"},
		Rate:  0.8,
		Pitch: 1.0,
	})

	assert.Equal(t, []string{"-s", "140", "-p", "50", "-v", "mb/mb-es1", "ventana"}, args)
}

func TestEspeakArgs_FallsBackToLang(t *testing.T) {
	args := espeakArgs(SpeakRequest{
		Text:  "hola",
		Voice: Voice{Name: "Spanish (Spain)", Lang: "es"},
		Rate:  0.8,
		Pitch: 1.0,
	})

	assert.Equal(t, []string{"-s", "140", "-p", "50", "-v", "es", "hola"}, args)
}

func TestLooksLikeLangTag(t *testing.T) {
	assert.True(t, looksLikeLangTag("es_ES"))
	assert.True(t, looksLikeLangTag("es-419"))
	assert.True(t, looksLikeLangTag("en_US"))
	assert.False(t, looksLikeLangTag("Mónica"))
	assert.False(t, looksLikeLangTag("es"))
	assert.False(t, looksLikeLangTag("ES_ES"))
}
