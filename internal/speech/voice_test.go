package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSpanish(t *testing.T) {
	voices := []Voice{
		{Name: "Mónica", Lang: "es-ES"},
		{Name: "Samantha", Lang: "en-US"},
		{Name: "Spanish (Mexico)", Lang: "unknown"},
		{Name: "Eddy", Lang: "fr-FR"},
		{Name: "Paulina", Lang: "es-MX"},
	}

	got := FilterSpanish(voices)
	require.Len(t, got, 3)
	assert.Equal(t, "Mónica", got[0].Name)
	assert.Equal(t, "Spanish (Mexico)", got[1].Name)
	assert.Equal(t, "Paulina", got[2].Name)
}

func TestFilterSpanish_Empty(t *testing.T) {
	got := FilterSpanish([]Voice{{Name: "Samantha", Lang: "en-US"}})
	assert.Empty(t, got)
}

func TestSelect(t *testing.T) {
	esES := Voice{Name: "Mónica", Lang: "es-ES"}
	esUS := Voice{Name: "Paulina", Lang: "es-US"}
	esUSGoogle := Voice{Name: "Google español de Estados Unidos", Lang: "es-US"}

	tests := []struct {
		name   string
		voices []Voice
		want   *Voice
	}{
		{
			name:   "google es-US wins over plain es-US and es-ES",
			voices: []Voice{esES, esUS, esUSGoogle},
			want:   &esUSGoogle,
		},
		{
			name:   "plain es-US beats es-ES",
			voices: []Voice{esES, esUS},
			want:   &esUS,
		},
		{
			name:   "first voice when no es-US",
			voices: []Voice{esES, {Name: "Jorge", Lang: "es-MX"}},
			want:   &esES,
		},
		{
			name:   "none when empty",
			voices: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.voices)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
