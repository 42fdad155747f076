package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/input"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/theme"
)

const (
	sidebarExpandedWidth  = 24
	sidebarCollapsedWidth = 6
	// sidebarTopPadding is the blank row above the first navigation item.
	sidebarTopPadding = 1
)

// HeaderTarget identifies a clickable control in the header bar.
type HeaderTarget int

const (
	TargetNone HeaderTarget = iota
	TargetMenu
	TargetSearch
	TargetTheme
	TargetNotifications
)

var headerTargets = []HeaderTarget{TargetMenu, TargetSearch, TargetTheme, TargetNotifications}

func (t HeaderTarget) zoneID() string {
	switch t {
	case TargetMenu:
		return "header-menu"
	case TargetSearch:
		return "header-search"
	case TargetTheme:
		return "header-theme"
	case TargetNotifications:
		return "header-notifications"
	default:
		return ""
	}
}

func sidebarZoneID(v state.ViewID) string {
	return "sidebar-" + string(v)
}

// HeaderInfo is the state the header bar reflects.
type HeaderInfo struct {
	Unread int
	Dark   bool
}

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width            int
	Height           int
	HeaderHeight     int
	StatusBarHeight  int
	SidebarCollapsed bool

	// Zones marks the header controls and navigation items as clickable.
	Zones *zone.Manager
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int, sidebarCollapsed bool) Layout {
	return Layout{
		Width:            width,
		Height:           height,
		HeaderHeight:     1,
		StatusBarHeight:  1,
		SidebarCollapsed: sidebarCollapsed,
	}
}

// SidebarWidth returns the width of the navigation sidebar, border included.
func (l Layout) SidebarWidth() int {
	if l.SidebarCollapsed {
		return sidebarCollapsedWidth
	}
	return sidebarExpandedWidth
}

// ContentWidth returns the width left of the sidebar.
func (l Layout) ContentWidth() int {
	return max(l.Width-l.SidebarWidth(), 0)
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight, 0)
}

// ContentOrigin returns the screen cell at the top-left of the content area.
func (l Layout) ContentOrigin() (x, y int) {
	return l.SidebarWidth(), l.HeaderHeight
}

type headerSegment struct {
	target HeaderTarget
	text   string
}

// RenderHeader renders the top header bar: menu toggle, brand, search
// hint, theme toggle and notification bell. Every control except the
// brand is marked as a click zone.
func (l Layout) RenderHeader(info HeaderInfo) string {
	style := theme.HeaderStyle
	themeGlyph := "◐ light"
	if info.Dark {
		themeGlyph = "◑ dark"
	}
	bell := "● 0"
	if info.Unread > 0 {
		bell = fmt.Sprintf("● %d", info.Unread)
	}

	left := []headerSegment{
		{TargetMenu, "≡"},
		{TargetNone, "Marketing Hub"},
		{TargetSearch, "/ Search campaigns, tasks... ctrl+k"},
	}
	right := []headerSegment{
		{TargetTheme, themeGlyph},
		{TargetNotifications, bell},
	}

	mark := func(seg headerSegment, s string) string {
		if seg.target == TargetNone {
			return s
		}
		return MarkZone(l.Zones, seg.target.zoneID(), s)
	}

	var rendered []string
	leftWidth := 0
	for _, seg := range left {
		s := style.Render(seg.text)
		if seg.target == TargetSearch {
			s = style.Foreground(theme.ColorSubtle).Render(seg.text)
		}
		leftWidth += lipgloss.Width(s)
		rendered = append(rendered, mark(seg, s))
	}

	rightRendered := make([]string, len(right))
	rightWidth := 0
	for i, seg := range right {
		s := style.Render(seg.text)
		if seg.target == TargetNotifications && info.Unread > 0 {
			s = theme.BadgeStyle.Render(seg.text)
		}
		rightWidth += lipgloss.Width(s)
		rightRendered[i] = mark(seg, s)
	}

	gap := max(l.Width-leftWidth-rightWidth, 0)
	rendered = append(rendered, lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render(""))
	rendered = append(rendered, rightRendered...)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// HeaderTargetAt returns the header control msg landed on, as of the last
// scanned frame.
func (l Layout) HeaderTargetAt(msg tea.MouseMsg) HeaderTarget {
	for _, t := range headerTargets {
		if ZoneHit(l.Zones, t.zoneID(), msg) {
			return t
		}
	}
	return TargetNone
}

// RenderSidebar renders the navigation menu with the current view
// highlighted and the user card at the bottom.
func (l Layout) RenderSidebar(current state.ViewID, user model.User) string {
	inner := l.SidebarWidth() - 1
	height := l.ContentHeight()

	lines := make([]string, 0, height)
	for i := 0; i < sidebarTopPadding; i++ {
		lines = append(lines, "")
	}
	for i, v := range state.Views() {
		label := fmt.Sprintf(" %d %s", i+1, v.Label())
		if l.SidebarCollapsed {
			label = fmt.Sprintf(" %d", i+1)
		}
		style := lipgloss.NewStyle().Width(inner)
		if v == current {
			style = style.Bold(true).Foreground(theme.ColorBlue)
			label = "▌" + strings.TrimPrefix(label, " ")
		}
		lines = append(lines, MarkZone(l.Zones, sidebarZoneID(v), style.Render(Truncate(label, inner))))
	}

	card := l.renderUserCard(user, inner)
	cardHeight := lipgloss.Height(card)
	for len(lines) < height-cardHeight {
		lines = append(lines, "")
	}
	menu := strings.Join(lines, "\n")
	if len(lines)+cardHeight <= height {
		menu = lipgloss.JoinVertical(lipgloss.Left, menu, card)
	}

	return lipgloss.NewStyle().
		Width(inner).
		Height(height).
		MaxHeight(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.ColorBorder).
		Render(menu)
}

func (l Layout) renderUserCard(user model.User, width int) string {
	initials := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorBlue).
		Render(" " + model.Initials(user.Name))
	if l.SidebarCollapsed {
		return initials
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		initials+" "+Truncate(user.Name, width-5),
		theme.MutedStyle.Render(" "+Truncate(user.Role, width-2)),
	)
}

// SidebarViewAt returns the navigation item msg landed on, as of the last
// scanned frame.
func (l Layout) SidebarViewAt(msg tea.MouseMsg) (state.ViewID, bool) {
	for _, v := range state.Views() {
		if ZoneHit(l.Zones, sidebarZoneID(v), msg) {
			return v, true
		}
	}
	return "", false
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(Truncate(hints, max(l.Width-2, 0)))

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// FitContent clips or pads s to exactly fill the content area.
func (l Layout) FitContent(s string) string {
	w, h := l.ContentWidth(), l.ContentHeight()
	return lipgloss.NewStyle().
		Width(w).
		MaxWidth(w).
		Height(h).
		MaxHeight(h).
		Render(s)
}

// RenderWithFrame composes a full terminal view: header on top, sidebar
// beside the content area, status bar at the bottom.
func (l Layout) RenderWithFrame(
	header string,
	sidebar string,
	content string,
	statusBar string,
) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, l.FitContent(content))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
	)
}

// PlaceOverlay centers overlay in a width x height area that hides what is
// underneath, and returns the area plus the cells the overlay occupies
// relative to the area's top-left corner.
func PlaceOverlay(width, height int, overlay string) (string, input.Rect) {
	r := OverlayRect(width, height, overlay)
	body := lipgloss.NewStyle().
		PaddingLeft(r.X).
		PaddingTop(r.Y).
		Render(overlay)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, body), r
}

// OverlayRect returns the visible cells PlaceOverlay draws overlay on.
func OverlayRect(width, height int, overlay string) input.Rect {
	w, h := lipgloss.Width(overlay), lipgloss.Height(overlay)
	x, y := max((width-w)/2, 0), max((height-h)/2, 0)
	// Rows and columns past the area are clipped when the frame is fitted.
	return input.Rect{
		X: x,
		Y: y,
		W: max(min(w, width-x), 0),
		H: max(min(h, height-y), 0),
	}
}

// PlacePanel draws panel at the top-right of a width-wide area, keeping
// the left part of base visible.
func PlacePanel(width, height int, base, panel string) string {
	pw := min(lipgloss.Width(panel), width)
	left := lipgloss.NewStyle().
		Width(width - pw).
		MaxWidth(width - pw).
		Height(height).
		MaxHeight(height).
		Render(base)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, panel)
}
