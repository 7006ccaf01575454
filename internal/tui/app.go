package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/solfej/etimo/internal/config"
	"github.com/solfej/etimo/internal/llm"
	"github.com/solfej/etimo/internal/speech"
	"github.com/solfej/etimo/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewLookup ViewType = iota
	ViewVoices
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// VoicesRefreshedMsg is sent after the host voice catalog has been
// re-enumerated.
type VoicesRefreshedMsg struct {
	Err error
}

// AppModel is the main TUI model
type AppModel struct {
	// Core dependencies
	settings *config.Settings
	client   *llm.Client
	registry *speech.Registry

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	lookupView   views.LookupModel
	voicesView   views.VoicesModel
	settingsView views.SettingsModel

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application. client may be nil when no API key is
// configured; the lookup view reports that on submit.
func NewApp(settings *config.Settings, client *llm.Client, registry *speech.Registry) AppModel {
	menuItems := []MenuItem{
		{Label: "Lookup", View: ViewLookup, Shortcut: "1"},
		{Label: "Voices", View: ViewVoices, Shortcut: "2"},
		{Label: "Settings", View: ViewSettings, Shortcut: "3"},
	}

	return AppModel{
		settings:     settings,
		client:       client,
		registry:     registry,
		sidebarWidth: 16,
		currentView:  ViewLookup,
		menuItems:    menuItems,

		lookupView:   views.NewLookupModel(client, registry),
		voicesView:   views.NewVoicesModel(registry),
		settingsView: views.NewSettingsModel(settings, registry),
	}
}

// Init initializes the model and kicks off the first voice catalog scan;
// the catalog loads asynchronously relative to the UI.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refreshVoices())
}

// refreshVoices re-enumerates the host voice catalog off the UI loop and
// re-applies the configured voice preference, if any.
func (m AppModel) refreshVoices() tea.Cmd {
	registry := m.registry
	preferred := ""
	if m.settings != nil {
		preferred = m.settings.Voice
	}

	return func() tea.Msg {
		if registry == nil {
			return VoicesRefreshedMsg{}
		}
		err := registry.Refresh(context.Background())
		if err == nil && preferred != "" {
			// Best effort: the preferred voice may not exist on this host.
			_ = registry.SelectVoice(preferred)
		}
		return VoicesRefreshedMsg{Err: err}
	}
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys. Plain letters stay out of this list so they reach
		// the lookup input.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "1", "2", "3":
			// Switch views unless the lookup input would swallow the digit.
			if m.sidebarActive || m.currentView != ViewLookup {
				idx := int(msg.String()[0] - '1')
				m.currentView = m.menuItems[idx].View
				m.selectedMenu = idx
				m.sidebarActive = false
				return m, nil
			}
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		case "q":
			// Quit unless the lookup input would swallow the key.
			if m.sidebarActive || m.currentView != ViewLookup {
				return m, tea.Quit
			}
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				m.currentView = m.menuItems[m.selectedMenu].View
				m.sidebarActive = false
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.lookupView.SetSize(contentWidth, contentHeight)
		m.voicesView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.RefreshRequestMsg:
		return m, m.refreshVoices()

	case VoicesRefreshedMsg:
		// Catalog state lives in the registry; the views re-read it on
		// their next render.
		return m, nil
	}

	// Delegate to active view if not in sidebar mode
	if !m.sidebarActive {
		var cmd tea.Cmd
		switch m.currentView {
		case ViewLookup:
			m.lookupView, cmd = m.lookupView.Update(msg)
		case ViewVoices:
			m.voicesView, cmd = m.voicesView.Update(msg)
		case ViewSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewLookup:
		content = m.lookupView.View()
	case ViewVoices:
		content = m.voicesView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	title := SidebarTitleStyle.Render("  etimo  ")
	items = append(items, title)
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	// Spacer
	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	help := SidebarHelpStyle.Render("? Help  esc Quit")
	items = append(items, help)

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("etimo - Spanish etymology explorer") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("1-3") + descStyle.Render("Switch views (outside the word input)") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Toggle sidebar focus") + "\n"
	helpText += keyStyle.Render("?") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("Sidebar, then quit") + "\n"

	helpText += sectionStyle.Render("Lookup View") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Analyze the word") + "\n"
	helpText += keyStyle.Render("ctrl+y") + descStyle.Render("Copy analysis to clipboard") + "\n"
	helpText += keyStyle.Render("ctrl+s") + descStyle.Render("Pronounce the word") + "\n"
	helpText += keyStyle.Render("↑/↓") + descStyle.Render("Cycle recent searches") + "\n"

	helpText += sectionStyle.Render("Voices View") + "\n"
	helpText += keyStyle.Render("j/k") + descStyle.Render("Move selection") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Select voice") + "\n"
	helpText += keyStyle.Render("a") + descStyle.Render("Back to automatic choice") + "\n"
	helpText += keyStyle.Render("t") + descStyle.Render("Test playback") + "\n"
	helpText += keyStyle.Render("r") + descStyle.Render("Rescan voice catalog") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
