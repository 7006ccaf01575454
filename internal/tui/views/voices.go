package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/solfej/etimo/internal/speech"
)

// Voices view styles
var (
	voicesTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	voiceRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1)

	voiceRowSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	voiceLangStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	voiceMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	voiceHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// RefreshRequestMsg asks the app to re-enumerate the host voice catalog.
type RefreshRequestMsg struct{}

// VoicesModel is the voice picker view model.
type VoicesModel struct {
	registry *speech.Registry

	cursor   int
	speakErr error

	width  int
	height int
}

// NewVoicesModel creates a new voices view model.
func NewVoicesModel(registry *speech.Registry) VoicesModel {
	return VoicesModel{registry: registry}
}

// SetSize updates the view dimensions.
func (m *VoicesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m VoicesModel) Update(msg tea.Msg) (VoicesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		voices := m.voices()
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(voices)-1 {
				m.cursor++
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "enter":
			if m.registry != nil && m.cursor < len(voices) {
				_ = m.registry.SelectVoice(voices[m.cursor].Name)
			}
			return m, nil
		case "a":
			if m.registry != nil {
				m.registry.ClearManual()
			}
			return m, nil
		case "r":
			return m, func() tea.Msg { return RefreshRequestMsg{} }
		case "t":
			return m, m.testCmd()
		}

	case spokeMsg:
		m.speakErr = msg.err
		return m, nil
	}

	return m, nil
}

func (m VoicesModel) voices() []speech.Voice {
	if m.registry == nil {
		return nil
	}
	return m.registry.Voices()
}

// testCmd plays a sample word with the selected voice.
func (m *VoicesModel) testCmd() tea.Cmd {
	registry := m.registry
	return func() tea.Msg {
		if registry == nil {
			return spokeMsg{}
		}
		return spokeMsg{err: registry.Speak(context.Background(), "hola")}
	}
}

// View renders the voices view.
func (m VoicesModel) View() string {
	var b strings.Builder

	b.WriteString(voicesTitleStyle.Render("Spanish Voices"))
	b.WriteString("\n")

	if m.registry == nil || m.registry.Engine() == nil {
		b.WriteString(voiceMutedStyle.Render("No speech engine found on this system."))
		b.WriteString("\n")
		b.WriteString(voiceMutedStyle.Render("Install espeak-ng, or run on macOS for the built-in voices."))
		return b.String()
	}

	b.WriteString(voiceMutedStyle.Render("Engine: " + m.registry.Engine().Name()))
	b.WriteString("\n\n")

	voices := m.voices()
	if len(voices) == 0 {
		b.WriteString(voiceMutedStyle.Render("No Spanish voices found (press r to rescan)"))
		b.WriteString("\n")
		return b.String()
	}

	selected, hasSelected := m.registry.Selected()
	for i, v := range voices {
		marker := "  "
		if hasSelected && v == selected {
			marker = "✓ "
		}
		row := fmt.Sprintf("%s%-28s %s", marker, v.Name, voiceLangStyle.Render(v.Lang))
		if i == m.cursor {
			b.WriteString(voiceRowSelectedStyle.Render(row))
		} else {
			b.WriteString(voiceRowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if m.speakErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Playback failed: " + m.speakErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(voiceHelpStyle.Render("j/k: move • enter: select • a: automatic • t: test • r: rescan"))

	return b.String()
}
