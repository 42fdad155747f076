package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/marketing-hub/internal/input"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/ui"
)

// handleMouse offers presses to the global pointer listeners first, then
// resolves overlay, header, panel, sidebar and card hits. Wheel events
// scroll the open overlay.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		if m.controller.Overlays.IsOpen() {
			return m.updateOverlay(msg)
		}
		return m, nil
	}

	ev := input.PointerEvent{
		X:       msg.X,
		Y:       msg.Y,
		Button:  msg.Button,
		Surface: m.overlaySurface(),
	}
	if m.dispatcher.DispatchPointer(ev) {
		return m.syncOverlay()
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.controller.Overlays.IsOpen() {
		return m.clickOverlay(msg)
	}

	switch m.layout.HeaderTargetAt(msg) {
	case ui.TargetMenu:
		m.toggleSidebar()
		return m, nil
	case ui.TargetSearch:
		m.controller.Overlays.OpenCommandPalette()
		return m.syncOverlay()
	case ui.TargetTheme:
		m.toggleTheme()
		return m, nil
	case ui.TargetNotifications:
		m.togglePanel(state.PanelNotifications)
		return m, nil
	}

	if m.controller.Panel() == state.PanelNotifications && m.notifications.Clicked(msg) {
		m.logger.Debug("notification read by click",
			zap.Int("unread", m.controller.Notifications.UnreadCount()))
		return m, nil
	}

	if v, ok := m.layout.SidebarViewAt(msg); ok {
		m.controller.View.Select(v)
		m.logger.Debug("sidebar select", zap.String("view", string(v)))
		return m, nil
	}

	switch m.controller.View.Current() {
	case state.ViewDashboard:
		return m, m.dashboard.Clicked(msg)
	case state.ViewCampaigns:
		return m, m.campaigns.Clicked(msg)
	case state.ViewTasks:
		return m, m.tasks.Clicked(msg)
	}
	return m, nil
}

// clickOverlay handles a left press inside the open overlay: the close
// button closes it and palette rows navigate.
func (m Model) clickOverlay(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if ui.ZoneHit(m.zones, ui.CloseZoneID, msg) {
		m.controller.Overlays.CloseAll()
		return m.syncOverlay()
	}
	if m.controller.Overlays.Kind() == state.OverlayCommandPalette {
		return m, m.palette.Clicked(msg)
	}
	return m, nil
}
