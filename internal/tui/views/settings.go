package views

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/solfej/etimo/internal/clipboard"
	"github.com/solfej/etimo/internal/config"
	"github.com/solfej/etimo/internal/speech"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc")).
				Width(16)

	settingsValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	settingsOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf"))

	settingsBadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ff6b6b"))
)

// SettingsModel is the settings view model.
type SettingsModel struct {
	settings  *config.Settings
	registry  *speech.Registry
	configDir string

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(settings *config.Settings, registry *speech.Registry) SettingsModel {
	dir, err := config.GetConfigDir()
	if err != nil {
		dir = "~/.config/etimo"
	}

	return SettingsModel{
		settings:  settings,
		registry:  registry,
		configDir: dir,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("etimo Configuration"))
	b.WriteString("\n")
	b.WriteString(settingsPathStyle.Render("Config: " + filepath.Join(m.configDir, config.FileName)))
	b.WriteString("\n\n")

	s := m.settings
	if s == nil {
		s = config.Default()
	}

	b.WriteString(m.renderRow("Model", s.Model))
	b.WriteString(m.renderRow("Base URL", s.BaseURL))

	if os.Getenv("OPENAI_API_KEY") != "" {
		b.WriteString(settingsLabelStyle.Render("API key:") + " " + settingsOKStyle.Render("set"))
	} else {
		b.WriteString(settingsLabelStyle.Render("API key:") + " " + settingsBadStyle.Render("not set (export OPENAI_API_KEY)"))
	}
	b.WriteString("\n\n")

	engineName := "none"
	if m.registry != nil && m.registry.Engine() != nil {
		engineName = m.registry.Engine().Name()
	}
	b.WriteString(m.renderRow("Speech engine", engineName))

	voiceLine := settingsMutedStyle.Render("none selected")
	if m.registry != nil {
		if v, ok := m.registry.Selected(); ok {
			voiceLine = settingsValueStyle.Render(v.Name + " (" + v.Lang + ")")
		}
	}
	b.WriteString(settingsLabelStyle.Render("Voice:") + " " + voiceLine + "\n")

	if s.Voice != "" {
		b.WriteString(m.renderRow("Voice override", s.Voice))
	}

	clipLine := settingsOKStyle.Render("available")
	if !clipboard.Available() {
		clipLine = settingsBadStyle.Render("unavailable")
	}
	b.WriteString(settingsLabelStyle.Render("Clipboard:") + " " + clipLine + "\n")

	b.WriteString("\n")
	b.WriteString(settingsMutedStyle.Render("Edit the config file and restart to change settings."))

	return b.String()
}

func (m SettingsModel) renderRow(label, value string) string {
	return settingsLabelStyle.Render(label+":") + " " + settingsValueStyle.Render(value) + "\n"
}
