package content

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

const folderWidth = 22

// ContentLoadedMsg carries the folders and recent files.
type ContentLoadedMsg struct {
	Folders []model.Folder
	Files   []model.File
}

// Model is the content hub view.
type Model struct {
	store   store.Store
	keys    *keys.KeyMap
	folders []model.Folder
	files   []model.File
	table   table.Model
	width   int
	height  int
}

// New creates a new content hub model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	t := table.New(
		table.WithColumns(fileColumns(width)),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(theme.ColorBlue).Bold(true)
	t.SetStyles(styles)

	return Model{
		store:  s,
		keys:   k,
		table:  t,
		width:  width,
		height: height,
	}
}

func fileColumns(width int) []table.Column {
	name := max(width-3-10-14-8, 20)
	return []table.Column{
		{Title: "", Width: 3},
		{Title: "Name", Width: name},
		{Title: "Size", Width: 10},
		{Title: "Modified", Width: 14},
	}
}

// Glyph returns the icon shown for a file type.
func Glyph(fileType string) string {
	switch fileType {
	case model.FileTypeVideo:
		return "▶"
	case model.FileTypePDF:
		return "▤"
	case model.FileTypeImage:
		return "▣"
	case model.FileTypeCode:
		return "‹›"
	case model.FileTypeDocument:
		return "≡"
	case model.FileTypeArchive:
		return "▦"
	default:
		return "·"
	}
}

// Init returns a command that loads the content hub.
func (m Model) Init() tea.Cmd {
	return m.LoadContent()
}

// Update handles messages for the content hub.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ContentLoadedMsg:
		m.folders = msg.Folders
		m.files = msg.Files
		rows := make([]table.Row, len(m.files))
		for i, f := range m.files {
			rows[i] = table.Row{Glyph(f.Type), f.Name, f.Size, f.Modified}
		}
		m.table.SetRows(rows)
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// SelectedFile returns the highlighted file.
func (m Model) SelectedFile() (model.File, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.files) {
		return model.File{}, false
	}
	return m.files[i], true
}

// View renders folders above the recent files table.
func (m Model) View() string {
	folders := make([]string, len(m.folders))
	for i, f := range m.folders {
		folders[i] = theme.CardStyle.Width(folderWidth - 2).Render(
			lipgloss.NewStyle().Foreground(theme.ColorYellow).Render("▰ ") + ui.Truncate(f.Name, folderWidth-6),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("Content Hub"),
		theme.MutedStyle.Render("Folders, brand assets and recent uploads"),
		ui.Section("Folders"),
		ui.Grid(folders, max(m.width/folderWidth, 1)),
		ui.Section("Recent Files"),
		m.table.View(),
	)
}

// LoadContent returns a tea.Cmd that queries folders and files.
func (m Model) LoadContent() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		folders, err := s.GetFolders(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading folders", Err: err}
		}
		files, err := s.GetFiles(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading files", Err: err}
		}
		return ContentLoadedMsg{Folders: folders, Files: files}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(fileColumns(width))
	m.table.SetHeight(max(height-10, 3))
}
