package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/theme"
)

const panelWidth = 46

// Model is the keyboard help panel.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help panel model.
func New(keys *keys.KeyMap, width, height int) Model {
	m := Model{
		keys: keys,
		help: help.New(),
	}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help panel, one binding group per block.
func (m Model) View() string {
	title := theme.TitleStyle.Render("Keyboard Shortcuts")

	blocks := []string{title}
	for _, group := range m.keys.FullHelp() {
		blocks = append(blocks, m.help.FullHelpView([][]key.Binding{group}), "")
	}

	return theme.DetailPanelStyle.
		Width(m.width - 2).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// SetSize updates the panel dimensions for a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = min(panelWidth, max(width, 24))
	m.height = height
	m.help.Width = m.width - 6
}
