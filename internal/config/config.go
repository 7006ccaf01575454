// Package config handles loading and saving user configuration for etimo.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/solfej/etimo/internal/llm"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file inside the config directory.
const FileName = "config.yaml"

// Settings holds user configuration. The API credential itself never lives
// here; it comes from the OPENAI_API_KEY environment variable only.
type Settings struct {
	// Model is the chat-completion model identifier.
	Model string `yaml:"model"`
	// BaseURL is the OpenAI-compatible API root.
	BaseURL string `yaml:"base_url"`
	// SpeechEngine forces a specific engine ("say", "espeak-ng", "espeak").
	// Empty means autodetect.
	SpeechEngine string `yaml:"speech_engine,omitempty"`
	// Voice is a preferred voice name, applied as a manual selection over
	// the automatic policy.
	Voice string `yaml:"voice,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		Model:   llm.DefaultModel,
		BaseURL: llm.DefaultBaseURL,
	}
}

// Load reads settings from a YAML file. A missing file yields the defaults;
// fields absent from the file fall back to their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if s.Model == "" {
		s.Model = llm.DefaultModel
	}
	if s.BaseURL == "" {
		s.BaseURL = llm.DefaultBaseURL
	}

	return s, nil
}

// Save writes settings to a YAML file.
func Save(path string, s *Settings) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "etimo"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "etimo"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
