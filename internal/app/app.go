// Package app is the composition root: it owns the UI state controller,
// the global input dispatcher, and every view, overlay and panel.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/nhle/marketing-hub/internal/input"
	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
	"github.com/nhle/marketing-hub/internal/ui/analytics"
	"github.com/nhle/marketing-hub/internal/ui/campaigndetail"
	"github.com/nhle/marketing-hub/internal/ui/campaigns"
	"github.com/nhle/marketing-hub/internal/ui/content"
	"github.com/nhle/marketing-hub/internal/ui/dashboard"
	"github.com/nhle/marketing-hub/internal/ui/feedback"
	helpview "github.com/nhle/marketing-hub/internal/ui/help"
	"github.com/nhle/marketing-hub/internal/ui/notifications"
	"github.com/nhle/marketing-hub/internal/ui/palette"
	"github.com/nhle/marketing-hub/internal/ui/taskdetail"
	"github.com/nhle/marketing-hub/internal/ui/tasks"
	"github.com/nhle/marketing-hub/internal/ui/team"
)

// Model is the root Bubble Tea model. It routes input through the global
// dispatcher, keeps overlay components in step with the controller, and
// composes the frame.
type Model struct {
	controller *state.Controller
	dispatcher *input.Dispatcher
	global     *input.Global
	zones      *zone.Manager
	store      store.Store
	keys       *keys.KeyMap
	logger     *zap.Logger
	user       model.User

	layout ui.Layout
	ready  bool
	status string

	// shown is the overlay the overlay components were last opened for.
	shown string

	dashboard dashboard.Model
	campaigns campaigns.Model
	tasks     tasks.Model
	content   content.Model
	team      team.Model
	analytics analytics.Model
	feedback  feedback.Model

	palette        palette.Model
	campaignDetail campaigndetail.Model
	taskDetail     taskdetail.Model

	notifications notifications.Model
	helpView      helpview.Model
}

// New creates the root model around an existing controller.
func New(s store.Store, c *state.Controller, user model.User, logger *zap.Logger) Model {
	km := keys.DefaultKeyMap()
	d := input.NewDispatcher()
	layout := ui.NewLayout(80, 24, c.Prefs.SidebarCollapsed)
	w, h := layout.ContentWidth(), layout.ContentHeight()

	m := Model{
		controller: c,
		dispatcher: d,
		global:     input.NewGlobal(d, c, km, logger),
		zones:      zone.New(),
		store:      s,
		keys:       km,
		logger:     logger,
		user:       user,
		layout:     layout,

		dashboard: dashboard.New(s, km, user, w, h),
		campaigns: campaigns.New(s, km, w, h),
		tasks:     tasks.New(s, km, c.TaskView, w, h),
		content:   content.New(s, km, w, h),
		team:      team.New(s, km, w, h),
		analytics: analytics.New(s, km, w, h),
		feedback:  feedback.New(s, km, w, h),

		palette:        palette.New(s, w, h),
		campaignDetail: campaigndetail.New(s, km, w, h),
		taskDetail:     taskdetail.New(s, km, user.Name, w, h),

		notifications: notifications.New(c.Notifications, km, w, h),
		helpView:      helpview.New(km, w, h),
	}
	m.layout.Zones = m.zones
	m.dashboard.SetZones(m.zones)
	m.campaigns.SetZones(m.zones)
	m.tasks.SetZones(m.zones)
	m.palette.SetZones(m.zones)
	m.campaignDetail.SetZones(m.zones)
	m.taskDetail.SetZones(m.zones)
	m.notifications.SetZones(m.zones)
	return m
}

// Close releases the click-zone tracker. Call it after the program exits.
func (m Model) Close() {
	m.global.Unmount()
	m.zones.Close()
}

// Init mounts the global input listeners, applies the theme and loads
// every view.
func (m Model) Init() tea.Cmd {
	m.global.Mount()
	theme.Apply(m.controller.Prefs.DarkMode)

	return tea.Batch(
		m.dashboard.Init(),
		m.campaigns.Init(),
		m.tasks.Init(),
		m.content.Init(),
		m.team.Init(),
		m.analytics.Init(),
		m.feedback.Init(),
		m.palette.Init(),
	)
}

// Update handles messages and dispatches them to the right component.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ui.OpenCampaignMsg:
		m.controller.Overlays.OpenCampaignDetail(msg.Campaign)
		return m.syncOverlay()

	case ui.OpenTaskMsg:
		m.controller.Overlays.OpenTaskDetail(msg.Task)
		return m.syncOverlay()

	case ui.NavigateMsg:
		m.controller.Overlays.CloseAll()
		m.controller.View.Select(msg.View)
		m.logger.Debug("navigate", zap.String("view", string(m.controller.View.Current())))
		return m.syncOverlay()

	case ui.ErrorMsg:
		m.logger.Warn("store operation failed", zap.String("op", msg.Op), zap.Error(msg.Err))
		m.status = msg.Error()
		return m, nil

	case tasks.ToggleLayoutMsg:
		m.controller.ToggleTaskView()
		m.tasks.SetMode(m.controller.TaskView)
		return m, nil

	case dashboard.DataLoadedMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case campaigns.CampaignsLoadedMsg:
		var cmd tea.Cmd
		m.campaigns, cmd = m.campaigns.Update(msg)
		return m, cmd

	case tasks.TasksLoadedMsg:
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd

	case content.ContentLoadedMsg:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd

	case team.TeamLoadedMsg:
		var cmd tea.Cmd
		m.team, cmd = m.team.Update(msg)
		return m, cmd

	case analytics.AnalyticsLoadedMsg:
		var cmd tea.Cmd
		m.analytics, cmd = m.analytics.Update(msg)
		return m, cmd

	case feedback.FeedbackLoadedMsg, feedback.DecisionMsg:
		var cmd tea.Cmd
		m.feedback, cmd = m.feedback.Update(msg)
		return m, cmd

	case palette.ItemsLoadedMsg:
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd

	case campaigndetail.TasksLoadedMsg:
		var cmd tea.Cmd
		m.campaignDetail, cmd = m.campaignDetail.Update(msg)
		return m, cmd

	case taskdetail.CommentsLoadedMsg:
		var cmd tea.Cmd
		m.taskDetail, cmd = m.taskDetail.Update(msg)
		return m, cmd

	case taskdetail.CommentAddedMsg:
		var cmd tea.Cmd
		m.taskDetail, cmd = m.taskDetail.Update(msg)
		m.logger.Debug("comment added", zap.Int("task", msg.Comment.TaskID))
		return m, tea.Batch(cmd, m.tasks.LoadTasks())

	case taskdetail.TaskReloadedMsg:
		var cmd tea.Cmd
		m.taskDetail, cmd = m.taskDetail.Update(msg)
		return m, cmd
	}

	// Cursor blinks and form internals belong to whatever has focus.
	if m.controller.Overlays.IsOpen() {
		return m.updateOverlay(msg)
	}
	return m.updateActiveView(msg)
}

// handleKey routes a key press: force quit, then the global listeners,
// then the open overlay, then app shortcuts, then the open panel, and
// finally the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	m.status = ""

	if m.dispatcher.DispatchKey(msg) {
		return m.syncOverlay()
	}

	if m.controller.Overlays.IsOpen() {
		return m.updateOverlay(msg)
	}

	if i, ok := m.keys.ViewIndex(msg.String()); ok {
		m.controller.View.Select(state.ViewAt(i))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.NextView):
		m.controller.View.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevView):
		m.controller.View.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Sidebar):
		m.toggleSidebar()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.controller.Overlays.OpenCommandPalette()
		return m.syncOverlay()

	case key.Matches(msg, m.keys.Notifications):
		m.togglePanel(state.PanelNotifications)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.togglePanel(state.PanelHelp)
		return m, nil
	}

	if m.controller.Panel() == state.PanelNotifications {
		var cmd tea.Cmd
		m.notifications, cmd = m.notifications.Update(msg)
		return m, cmd
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the current primary view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.controller.View.Current() {
	case state.ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case state.ViewCampaigns:
		m.campaigns, cmd = m.campaigns.Update(msg)
	case state.ViewTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case state.ViewContent:
		m.content, cmd = m.content.Update(msg)
	case state.ViewTeam:
		m.team, cmd = m.team.Update(msg)
	case state.ViewAnalytics:
		m.analytics, cmd = m.analytics.Update(msg)
	case state.ViewFeedback:
		m.feedback, cmd = m.feedback.Update(msg)
	}

	return m, cmd
}

// updateOverlay dispatches the message to the open overlay component.
func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.controller.Overlays.Kind() {
	case state.OverlayCommandPalette:
		m.palette, cmd = m.palette.Update(msg)
	case state.OverlayCampaignDetail:
		m.campaignDetail, cmd = m.campaignDetail.Update(msg)
	case state.OverlayTaskDetail:
		m.taskDetail, cmd = m.taskDetail.Update(msg)
	}

	return m, cmd
}

// syncOverlay opens the overlay component matching the controller when
// the active overlay changed since the last call.
func (m Model) syncOverlay() (tea.Model, tea.Cmd) {
	active := m.controller.Overlays.Active()
	id := overlayKey(active)
	if id == m.shown {
		return m, nil
	}
	m.shown = id

	dark := m.controller.Prefs.DarkMode
	switch o := active.(type) {
	case state.CommandPalette:
		return m, m.palette.Open()
	case state.CampaignDetail:
		return m, m.campaignDetail.Open(o.Campaign, dark)
	case state.TaskDetail:
		return m, m.taskDetail.Open(o.Task, dark)
	}
	return m, nil
}

// overlayKey identifies an overlay by kind and record id. Overlay values
// are not comparable with == because they carry slices.
func overlayKey(o state.Overlay) string {
	switch o := o.(type) {
	case state.CampaignDetail:
		return fmt.Sprintf("%s:%d", o.Kind(), o.Campaign.ID)
	case state.TaskDetail:
		return fmt.Sprintf("%s:%d", o.Kind(), o.Task.ID)
	case nil:
		return ""
	default:
		return o.Kind().String()
	}
}

func (m *Model) togglePanel(p state.Panel) {
	m.controller.TogglePanel(p)
	if m.controller.Panel() == state.PanelNotifications {
		m.notifications.Reset()
	}
	m.logger.Debug("panel", zap.Stringer("open", m.controller.Panel()))
}

func (m *Model) toggleSidebar() {
	m.controller.Prefs.ToggleSidebar()
	m.resize(m.layout.Width, m.layout.Height)
}

func (m *Model) toggleTheme() {
	m.controller.Prefs.ToggleTheme()
	dark := m.controller.Prefs.DarkMode
	theme.Apply(dark)
	m.campaignDetail.SetDark(dark)
	m.taskDetail.SetDark(dark)
	m.logger.Debug("theme toggled", zap.Bool("dark", dark))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.global.Unmount()
	return m, tea.Quit
}

// resize recomputes the layout and propagates the content area size.
func (m *Model) resize(width, height int) {
	m.layout = ui.NewLayout(width, height, m.controller.Prefs.SidebarCollapsed)
	m.layout.Zones = m.zones
	w, h := m.layout.ContentWidth(), m.layout.ContentHeight()

	m.dashboard.SetSize(w, h)
	m.campaigns.SetSize(w, h)
	m.tasks.SetSize(w, h)
	m.content.SetSize(w, h)
	m.team.SetSize(w, h)
	m.analytics.SetSize(w, h)
	m.feedback.SetSize(w, h)

	m.palette.SetSize(w, h)
	m.campaignDetail.SetSize(w, h)
	m.taskDetail.SetSize(w, h)

	m.notifications.SetSize(w, h)
	m.helpView.SetSize(w, h)
}
