package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solfej/etimo/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultModel, s.Model)
	assert.Equal(t, llm.DefaultBaseURL, s.BaseURL)
	assert.Empty(t, s.Voice)
}

func TestLoad_PartialFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("voice: Mónica\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Mónica", s.Voice)
	assert.Equal(t, llm.DefaultModel, s.Model)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	want := &Settings{
		Model:        "gpt-4o",
		BaseURL:      "https://example.test/v1",
		SpeechEngine: "espeak-ng",
		Voice:        "Paulina",
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "etimo"), dir)
}
