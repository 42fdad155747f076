package state

import "strings"

// DisplayPrefs are the layout and theme toggles read by the styling layer.
type DisplayPrefs struct {
	SidebarCollapsed bool
	DarkMode         bool
}

// ToggleSidebar flips the sidebar between full and icon-only width.
func (p *DisplayPrefs) ToggleSidebar() {
	p.SidebarCollapsed = !p.SidebarCollapsed
}

// ToggleTheme flips between light and dark mode.
func (p *DisplayPrefs) ToggleTheme() {
	p.DarkMode = !p.DarkMode
}

// TaskView is the layout of the tasks view.
type TaskView string

const (
	TaskViewKanban TaskView = "kanban"
	TaskViewList   TaskView = "list"
)

// ParseTaskView converts free text into a TaskView, defaulting to kanban.
func ParseTaskView(s string) TaskView {
	if TaskView(strings.ToLower(strings.TrimSpace(s))) == TaskViewList {
		return TaskViewList
	}
	return TaskViewKanban
}

// Toggle returns the other layout.
func (v TaskView) Toggle() TaskView {
	if v == TaskViewList {
		return TaskViewKanban
	}
	return TaskViewList
}
