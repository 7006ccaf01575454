package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPush(t *testing.T) {
	tests := []struct {
		name   string
		recent []string
		word   string
		want   []string
	}{
		{
			name:   "empty list",
			recent: nil,
			word:   "ventana",
			want:   []string{"ventana"},
		},
		{
			name:   "new word goes first",
			recent: []string{"ventana"},
			word:   "casa",
			want:   []string{"casa", "ventana"},
		},
		{
			name:   "repeat moves to front without duplicating",
			recent: []string{"casa", "ventana"},
			word:   "ventana",
			want:   []string{"ventana", "casa"},
		},
		{
			name:   "truncates to five",
			recent: []string{"uno", "dos", "tres", "cuatro", "cinco"},
			word:   "seis",
			want:   []string{"seis", "uno", "dos", "tres", "cuatro"},
		},
		{
			name:   "exact string match only",
			recent: []string{"Casa"},
			word:   "casa",
			want:   []string{"casa", "Casa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Push(tt.recent, tt.word))
		})
	}
}

func TestPush_DoesNotMutateInput(t *testing.T) {
	recent := []string{"casa", "ventana"}
	_ = Push(recent, "sol")
	assert.Equal(t, []string{"casa", "ventana"}, recent)
}

func TestPush_RepeatedLookupSequence(t *testing.T) {
	var recent []string
	for _, w := range []string{"ventana", "casa", "ventana"} {
		recent = Push(recent, w)
	}
	assert.Equal(t, []string{"ventana", "casa"}, recent)
	assert.LessOrEqual(t, len(recent), Max)
}
