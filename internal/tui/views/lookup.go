// Package views provides the individual views for the etimo TUI.
package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/solfej/etimo/internal/analysis"
	"github.com/solfej/etimo/internal/clipboard"
	"github.com/solfej/etimo/internal/history"
	"github.com/solfej/etimo/internal/llm"
	"github.com/solfej/etimo/internal/speech"
	"github.com/solfej/etimo/internal/tui/bigword"
)

// Styles
var (
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	bigWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(1, 6).
			Align(lipgloss.Center)

	pronunciationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ecdc4")).
				Bold(true).
				Align(lipgloss.Center).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	confidenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	relatedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)

	mnemonicBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ff6b6b")).
				Padding(1, 2).
				Margin(1, 0)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	recentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Padding(0, 1)
)

// Message types
type analysisMsg struct {
	word   string
	record *analysis.Record
	err    error
}

type clearCopiedMsg struct{}

type spokeMsg struct {
	err error
}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// LookupModel is the word lookup view model.
type LookupModel struct {
	input    textinput.Model
	spin     spinner.Model
	client   *llm.Client
	registry *speech.Registry

	word      string
	record    *analysis.Record
	recent    []string
	recentIdx int // cursor for cycling recent searches into the input

	searching bool // single in-flight request guard
	err       error

	copied   bool
	speakErr error

	width  int
	height int
}

// NewLookupModel creates a new lookup view model.
func NewLookupModel(client *llm.Client, registry *speech.Registry) LookupModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a Spanish word..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	return LookupModel{
		input:     ti,
		spin:      sp,
		client:    client,
		registry:  registry,
		recentIdx: -1,
	}
}

// SetSize updates the view dimensions.
func (m *LookupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Recent returns the current recent-searches list, most recent first.
func (m LookupModel) Recent() []string {
	return m.recent
}

// Update handles messages.
func (m LookupModel) Update(msg tea.Msg) (LookupModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			// Submit stays disabled while a request is outstanding.
			if m.searching {
				return m, nil
			}
			word := strings.TrimSpace(m.input.Value())
			if word == "" {
				m.err = errInputEmpty
				m.record = nil
				return m, nil
			}
			return m.startSearch(word)

		case "up":
			if len(m.recent) > 0 {
				m.recentIdx++
				if m.recentIdx >= len(m.recent) {
					m.recentIdx = 0
				}
				m.input.SetValue(m.recent[m.recentIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if len(m.recent) > 0 && m.recentIdx >= 0 {
				m.recentIdx--
				if m.recentIdx < 0 {
					m.recentIdx = len(m.recent) - 1
				}
				m.input.SetValue(m.recent[m.recentIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "ctrl+y":
			if m.record != nil {
				if err := clipboard.Write(m.record.PlainText()); err == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil

		case "ctrl+s":
			if m.record != nil {
				return m, m.speakCmd(m.record.Pronunciation)
			}
			return m, nil
		}

	case analysisMsg:
		m.searching = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.record = msg.record
		m.recent = history.Push(m.recent, msg.word)
		m.recentIdx = -1
		return m, nil

	case spokeMsg:
		m.speakErr = msg.err
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case spinner.TickMsg:
		if m.searching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// errInputEmpty is the inline input error; no request is issued for it.
var errInputEmpty = errors.New("enter a word to analyze")

// startSearch clears previous state and launches the analysis request.
func (m LookupModel) startSearch(word string) (LookupModel, tea.Cmd) {
	m.word = word
	m.record = nil
	m.err = nil
	m.speakErr = nil
	m.copied = false
	m.searching = true
	return m, tea.Batch(m.analyzeCmd(word), m.spin.Tick)
}

// analyzeCmd performs the completion request and normalization off the UI loop.
func (m *LookupModel) analyzeCmd(word string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if client == nil {
			return analysisMsg{word: word, err: errNoClient}
		}
		raw, err := client.Analyze(context.Background(), word)
		if err != nil {
			return analysisMsg{word: word, err: err}
		}
		rec, err := analysis.Normalize(raw, word)
		return analysisMsg{word: word, record: rec, err: err}
	}
}

var errNoClient = errors.New("OPENAI_API_KEY not set")

func (m *LookupModel) speakCmd(text string) tea.Cmd {
	registry := m.registry
	return func() tea.Msg {
		if registry == nil {
			return spokeMsg{}
		}
		return spokeMsg{err: registry.Speak(context.Background(), text)}
	}
}

// describeError maps an analysis-flow failure to the user-facing message.
func describeError(err error) string {
	var se *llm.StatusError
	switch {
	case errors.Is(err, errInputEmpty):
		return "Enter a word to analyze."
	case errors.Is(err, errNoClient):
		return "OPENAI_API_KEY not set. Export it and try again."
	case errors.As(err, &se):
		return fmt.Sprintf("Upstream request failed (HTTP %d). Check your API key and try again.", se.StatusCode)
	case errors.Is(err, analysis.ErrMalformed):
		return "The reply could not be parsed. Try the search again."
	default:
		return "Something went wrong. Try the search again."
	}
}

// View renders the lookup view.
func (m LookupModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(describeError(m.err)))
		b.WriteString("\n")
	}

	if m.searching {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(loadingStyle.Render(fmt.Sprintf("Tracing the roots of %q...", m.word)))
		b.WriteString("\n")
	}

	if m.record != nil {
		b.WriteString(m.renderRecord(*m.record))
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Recent: "))
		b.WriteString(recentStyle.Render(strings.Join(m.recent, " · ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var helpParts []string
	if m.record != nil {
		helpParts = append(helpParts, "ctrl+y: copy", "ctrl+s: pronounce")
	}
	if len(m.recent) > 0 {
		helpParts = append(helpParts, "↑/↓: recent")
	}
	if len(helpParts) == 0 {
		b.WriteString(helpStyle.Render("Type a Spanish word and press Enter"))
	} else {
		b.WriteString(helpStyle.Render(strings.Join(helpParts, " • ")))
	}

	return b.String()
}

func (m LookupModel) renderRecord(r analysis.Record) string {
	var b strings.Builder

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	// Headword banner: block art when a font is available, styled box otherwise
	var wordDisplay string
	if bigword.IsAvailable() {
		cols := contentWidth - 8
		if cols > 56 {
			cols = 56
		}
		if art := bigword.GetCached(r.Word, cols, 6); art != "" {
			wordDisplay = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffe66d")).
				Render(art)
		}
	}
	if wordDisplay == "" {
		wordDisplay = bigWordStyle.Render(r.Word)
	}

	meta := pronunciationStyle.Render(r.Pronunciation) + " " +
		confidenceStyle.Render("["+string(r.Confidence)+"]")

	wordBlock := lipgloss.JoinVertical(lipgloss.Center, wordDisplay, meta)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(wordBlock))
	b.WriteString("\n\n")

	boxWidth := contentWidth
	if boxWidth > 72 {
		boxWidth = 72
	}
	wrap := boxWidth - 8

	b.WriteString(m.renderRow("Meaning", r.EnglishMeaning))
	b.WriteString(m.renderRow("Family", r.LanguageFamily))
	b.WriteString("\n")

	b.WriteString(boxStyle.Width(boxWidth).Render(
		subtitleStyle.Render("Etymology") + "\n\n" + valueStyle.Render(wordWrap(r.Etymology, wrap)),
	))
	b.WriteString("\n")

	if len(r.RelatedEnglishWords) > 0 {
		b.WriteString(boxStyle.Width(boxWidth).Render(
			subtitleStyle.Render("Related English words") + "\n\n" +
				relatedStyle.Render(wordWrap(strings.Join(r.RelatedEnglishWords, ", "), wrap)),
		))
		b.WriteString("\n")
	}

	header := subtitleStyle.Render("Mnemonic")
	if m.copied {
		header += "  " + copiedStyle.Render("Copied!")
	}
	b.WriteString(mnemonicBoxStyle.Width(boxWidth).Render(
		header + "\n\n" + valueStyle.Render(wordWrap(r.Mnemonic, wrap)),
	))
	b.WriteString("\n")

	if len(r.SampleSentences) > 0 {
		var lines []string
		for _, s := range r.SampleSentences {
			lines = append(lines, valueStyle.Render(wordWrap("· "+s.Spanish, wrap)))
			lines = append(lines, helpStyle.Render(wordWrap("  "+s.English, wrap)))
		}
		b.WriteString(boxStyle.Width(boxWidth).Render(
			subtitleStyle.Render("Sample sentences") + "\n\n" + strings.Join(lines, "\n"),
		))
		b.WriteString("\n")
	}

	if m.speakErr != nil {
		b.WriteString(errorStyle.Render("Playback failed: " + m.speakErr.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m LookupModel) renderRow(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value) + "\n"
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	words := strings.Fields(s)
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
