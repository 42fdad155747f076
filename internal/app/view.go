package app

import (
	"strings"

	"github.com/nhle/marketing-hub/internal/input"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/ui"
)

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerInfo())
	sidebar := m.layout.RenderSidebar(m.controller.View.Current(), m.user)
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.zones.Scan(m.layout.RenderWithFrame(header, sidebar, content, statusBar))
}

func (m Model) headerInfo() ui.HeaderInfo {
	return ui.HeaderInfo{
		Unread: m.controller.Notifications.UnreadCount(),
		Dark:   m.controller.Prefs.DarkMode,
	}
}

// renderContent draws the active view, then any panel, then any overlay.
func (m Model) renderContent() string {
	w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
	content := m.renderView()

	switch m.controller.Panel() {
	case state.PanelNotifications:
		content = ui.PlacePanel(w, h, content, m.notifications.View())
	case state.PanelHelp:
		content = ui.PlacePanel(w, h, content, m.helpView.View())
	}

	if overlay := m.renderOverlay(); overlay != "" {
		content, _ = ui.PlaceOverlay(w, h, overlay)
	}
	return content
}

func (m Model) renderView() string {
	switch m.controller.View.Current() {
	case state.ViewCampaigns:
		return m.campaigns.View()
	case state.ViewTasks:
		return m.tasks.View()
	case state.ViewContent:
		return m.content.View()
	case state.ViewTeam:
		return m.team.View()
	case state.ViewAnalytics:
		return m.analytics.View()
	case state.ViewFeedback:
		return m.feedback.View()
	default:
		return m.dashboard.View()
	}
}

func (m Model) renderOverlay() string {
	switch m.controller.Overlays.Kind() {
	case state.OverlayCommandPalette:
		return m.palette.View()
	case state.OverlayCampaignDetail:
		return m.campaignDetail.View()
	case state.OverlayTaskDetail:
		return m.taskDetail.View()
	default:
		return ""
	}
}

// overlaySurface returns the screen cells the open overlay covers, or an
// empty rect when none is open.
func (m Model) overlaySurface() input.Rect {
	overlay := m.renderOverlay()
	if overlay == "" {
		return input.Rect{}
	}
	r := ui.OverlayRect(m.layout.ContentWidth(), m.layout.ContentHeight(), overlay)
	ox, oy := m.layout.ContentOrigin()
	r.X += ox
	r.Y += oy
	return r
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	hints := m.contextHints()
	if m.status != "" {
		return m.status + " | " + hints
	}
	return hints
}

func (m Model) contextHints() string {
	switch m.controller.Overlays.Kind() {
	case state.OverlayCommandPalette:
		return "↑/↓ move | enter go | esc close"
	case state.OverlayCampaignDetail:
		return "j/k task | enter open task | esc close"
	case state.OverlayTaskDetail:
		if m.taskDetail.Composing() {
			return "enter submit | esc close"
		}
		return "c comment | pgup/pgdn scroll | esc close"
	}

	switch m.controller.Panel() {
	case state.PanelNotifications:
		return "j/k move | enter mark read | A mark all | n close"
	case state.PanelHelp:
		return "? close help | esc close"
	}

	global := "1-7 views | ctrl+k search | n notifications | ? help | q quit"
	var local []string
	switch m.controller.View.Current() {
	case state.ViewCampaigns:
		local = append(local, m.campaigns.FilterSummary(), "f filter")
	case state.ViewTasks:
		local = append(local, "v layout")
		if m.controller.TaskView == state.TaskViewList {
			local = append(local, m.tasks.FilterSummary(), "c/a filter")
		}
	case state.ViewAnalytics:
		local = append(local, "period: "+m.analytics.Period(), "p period")
	case state.ViewFeedback:
		local = append(local, "a approve", "r reject")
	}
	if len(local) == 0 {
		return global
	}
	return strings.Join(local, " | ") + " | " + global
}
