package keys

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down  key.Binding
	Up    key.Binding
	Left  key.Binding
	Right key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Escape    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Command palette. Palette is the ctrl/meta chord, Search the plain
	// slash shortcut that only fires with nothing open.
	Palette key.Binding
	Search  key.Binding

	// View switching
	Views    []key.Binding
	NextView key.Binding
	PrevView key.Binding

	// Chrome toggles
	Sidebar       key.Binding
	Theme         key.Binding
	Notifications key.Binding
	Help          key.Binding
	MarkAllRead   key.Binding

	// View actions
	ToggleLayout  key.Binding
	CycleStatus   key.Binding
	CycleCampaign key.Binding
	CycleAssignee key.Binding
	CyclePeriod   key.Binding
	Approve       key.Binding
	Reject        key.Binding
	Comment       key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	views := make([]key.Binding, 7)
	for i := range views {
		n := strconv.Itoa(i + 1)
		views[i] = key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, "view "+n),
		)
	}

	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+k", "alt+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Views: views,
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		MarkAllRead: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "mark all read"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "kanban/list"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter status"),
		),
		CycleCampaign: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "filter campaign"),
		),
		CycleAssignee: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "filter assignee"),
		),
		CyclePeriod: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "period"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "approve"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reject"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
	}
}

// ViewIndex returns the zero-based view number bound to msg, if any.
func (k *KeyMap) ViewIndex(msg string) (int, bool) {
	for i, b := range k.Views {
		for _, s := range b.Keys() {
			if s == msg {
				return i, true
			}
		}
	}
	return 0, false
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Escape,
		k.Palette, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Escape},
		{k.Palette, k.Search, k.NextView, k.PrevView, k.Quit},
		{k.Sidebar, k.Theme, k.Notifications, k.MarkAllRead, k.Help},
		{k.ToggleLayout, k.CycleStatus, k.CycleCampaign, k.CycleAssignee},
		{k.CyclePeriod, k.Approve, k.Reject, k.Comment},
	}
}
