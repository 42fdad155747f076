package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/fixtures"
	"github.com/nhle/marketing-hub/internal/logging"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
	"github.com/nhle/marketing-hub/tests/testutil"
)

const (
	cmdTimeout = 100 * time.Millisecond
	maxDepth   = 6
)

var (
	ctrlK    = tea.KeyMsg{Type: tea.KeyCtrlK}
	altK     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	user     = model.User{Name: "Sarah Johnson", Role: "Marketing Lead"}
	testSize = tea.WindowSizeMsg{Width: 120, Height: 40}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func newTestApp(t *testing.T) Model {
	t.Helper()
	seed, err := fixtures.Load()
	require.NoError(t, err)

	c := state.NewController(state.WithNotifications(seed.Notifications))
	m := New(testutil.NewTestStore(t), c, user, logging.Nop())
	t.Cleanup(m.Close)

	theme.Apply(false)
	t.Cleanup(func() { theme.Apply(false) })

	m = drain(t, m, m.Init(), 0)
	return send(t, m, testSize)
}

// send feeds msg to the model and runs the resulting commands.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd, 0)
}

// drain runs cmd and feeds its messages back into the model. Commands that
// block past cmdTimeout, such as cursor blink ticks, are dropped.
func drain(t *testing.T, m Model, cmd tea.Cmd, depth int) Model {
	t.Helper()
	if cmd == nil || depth > maxDepth {
		return m
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return m
	}

	switch msg := msg.(type) {
	case nil, tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c, depth+1)
		}
		return m
	}

	next, nextCmd := m.Update(msg)
	return drain(t, next.(Model), nextCmd, depth+1)
}

func pointerListeners(m Model) int {
	_, p := m.dispatcher.Listeners()
	return p
}

func TestApp_LoadsViewsOnInit(t *testing.T) {
	m := newTestApp(t)

	view := m.View()
	assert.Contains(t, view, "Marketing Hub")
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Q4 Product Launch")

	keysN, pointersN := m.dispatcher.Listeners()
	assert.Equal(t, 1, keysN)
	assert.Zero(t, pointersN)
}

func TestApp_PaletteChord(t *testing.T) {
	for _, tc := range []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"ctrl+k", ctrlK},
		{"alt+k", altK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestApp(t)

			m = send(t, m, tc.msg)
			assert.Equal(t, state.OverlayCommandPalette, m.controller.Overlays.Kind())
			assert.Equal(t, 1, pointerListeners(m))
			assert.Contains(t, m.View(), "team members")

			// The chord never reaches the focused input.
			assert.Empty(t, m.palette.Query())
			m = send(t, m, runes("q"))
			assert.Equal(t, "q", m.palette.Query())
			assert.True(t, m.controller.Overlays.IsOpen())
		})
	}
}

func TestApp_EscapeClosesAndReleasesListener(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, ctrlK)
	require.True(t, m.controller.Overlays.IsOpen())

	m = send(t, m, esc)
	assert.False(t, m.controller.Overlays.IsOpen())
	assert.Zero(t, pointerListeners(m))
}

func TestApp_OpenCloseCyclesDoNotLeak(t *testing.T) {
	m := newTestApp(t)

	for range 5 {
		m = send(t, m, ctrlK)
		assert.Equal(t, 1, pointerListeners(m))
		m = send(t, m, esc)
		assert.Zero(t, pointerListeners(m))
	}
	keysN, _ := m.dispatcher.Listeners()
	assert.Equal(t, 1, keysN)
}

func TestApp_OutsidePressCloses(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, ctrlK)

	// (1, 0) is the menu toggle; the press only dismisses the overlay.
	m = send(t, m, press(1, 0))
	assert.False(t, m.controller.Overlays.IsOpen())
	assert.False(t, m.controller.Prefs.SidebarCollapsed)
	assert.Zero(t, pointerListeners(m))
}

func TestApp_InsidePressKeepsOverlay(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, ctrlK)

	r := m.overlaySurface()
	require.Positive(t, r.W)
	// Title row, clear of the result rows.
	m = send(t, m, press(r.X+2, r.Y+1))
	assert.True(t, m.controller.Overlays.IsOpen())

	right := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m = send(t, m, right)
	assert.True(t, m.controller.Overlays.IsOpen())
}

func TestApp_SidebarClickSelectsView(t *testing.T) {
	m := newTestApp(t)

	m = click(t, m, "sidebar-tasks")
	assert.Equal(t, state.ViewTasks, m.controller.View.Current())
}

func TestApp_HeaderClicks(t *testing.T) {
	m := newTestApp(t)

	m = click(t, m, "header-menu")
	assert.True(t, m.controller.Prefs.SidebarCollapsed)
	assert.Equal(t, 120-m.layout.SidebarWidth(), m.layout.ContentWidth())

	m = click(t, m, "header-theme")
	assert.True(t, m.controller.Prefs.DarkMode)
	assert.True(t, theme.Dark())

	m = click(t, m, "header-notifications")
	assert.Equal(t, state.PanelNotifications, m.controller.Panel())

	m = click(t, m, "header-search")
	assert.Equal(t, state.OverlayCommandPalette, m.controller.Overlays.Kind())
	assert.Equal(t, state.PanelNone, m.controller.Panel())
}

func TestApp_ViewShortcuts(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, runes("3"))
	assert.Equal(t, state.ViewTasks, m.controller.View.Current())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, state.ViewContent, m.controller.View.Current())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, state.ViewCampaigns, m.controller.View.Current())

	m = send(t, m, runes("7"))
	assert.Equal(t, state.ViewFeedback, m.controller.View.Current())
}

func TestApp_ShortcutsIgnoredWhileOverlayOpen(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, ctrlK)

	m = send(t, m, runes("3"))
	assert.Equal(t, state.ViewDashboard, m.controller.View.Current())
	assert.Equal(t, "3", m.palette.Query())
}

func TestApp_NotificationsPanel(t *testing.T) {
	m := newTestApp(t)
	require.Equal(t, 2, m.controller.Notifications.UnreadCount())

	m = send(t, m, runes("n"))
	require.Equal(t, state.PanelNotifications, m.controller.Panel())
	assert.Contains(t, m.View(), "Notifications")

	m = send(t, m, runes("j"))
	m = send(t, m, enter)
	assert.Equal(t, 1, m.controller.Notifications.UnreadCount())

	m = send(t, m, runes("A"))
	assert.Zero(t, m.controller.Notifications.UnreadCount())

	m = send(t, m, esc)
	assert.Equal(t, state.PanelNone, m.controller.Panel())
}

func TestApp_ThemeToggle(t *testing.T) {
	m := newTestApp(t)
	require.False(t, theme.Dark())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.controller.Prefs.DarkMode)
	assert.True(t, theme.Dark())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.False(t, theme.Dark())
}

func TestApp_ErrorShownInStatusBar(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, ui.ErrorMsg{Op: "loading team", Err: assert.AnError})
	assert.Contains(t, m.keyHints(), "loading team")

	m = send(t, m, runes("2"))
	assert.NotContains(t, m.keyHints(), "loading team")
}

func TestApp_CampaignToTaskDetail(t *testing.T) {
	m := newTestApp(t)
	all, err := m.store.GetCampaigns(context.Background(), store.CampaignFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)
	require.Equal(t, 1, all[0].ID)

	m = send(t, m, ui.OpenCampaignMsg{Campaign: all[0]})
	require.Equal(t, state.OverlayCampaignDetail, m.controller.Overlays.Kind())
	assert.Contains(t, m.View(), "Related Tasks (2)")

	m = send(t, m, enter)
	require.Equal(t, state.OverlayTaskDetail, m.controller.Overlays.Kind())
	assert.Equal(t, 1, pointerListeners(m))
	assert.Contains(t, m.View(), "Create product demo video")
	assert.Contains(t, m.View(), "Comments (3)")
}

func TestApp_DashboardEnterOpensCampaign(t *testing.T) {
	m := newTestApp(t)
	selected, ok := m.dashboard.Selected()
	require.True(t, ok)

	m = send(t, m, enter)
	active, ok := m.controller.Overlays.Active().(state.CampaignDetail)
	require.True(t, ok)
	assert.Equal(t, selected.ID, active.Campaign.ID)
}

// zoneAt renders frames until the zone tracker has placed id.
func zoneAt(t *testing.T, m Model, id string) *zone.ZoneInfo {
	t.Helper()
	var info *zone.ZoneInfo
	require.Eventually(t, func() bool {
		_ = m.View()
		info = m.zones.Get(id)
		return info != nil && !info.IsZero()
	}, time.Second, 10*time.Millisecond)
	return info
}

// click presses the top-left cell of the zone named id.
func click(t *testing.T, m Model, id string) Model {
	t.Helper()
	info := zoneAt(t, m, id)
	return send(t, m, press(info.StartX, info.StartY))
}

func TestApp_ClickCampaignRowOpensDetail(t *testing.T) {
	m := newTestApp(t)

	info := zoneAt(t, m, "dashboard-campaign-2")
	m = send(t, m, press(info.StartX, info.StartY))

	active, ok := m.controller.Overlays.Active().(state.CampaignDetail)
	require.True(t, ok)
	assert.Equal(t, 2, active.Campaign.ID)
}

func TestApp_ClickKanbanCardOpensTask(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, runes("3"))

	info := zoneAt(t, m, "task-card-3")
	m = send(t, m, press(info.StartX+1, info.StartY+1))

	active, ok := m.controller.Overlays.Active().(state.TaskDetail)
	require.True(t, ok)
	assert.Equal(t, 3, active.Task.ID)
}

func TestApp_PaletteNavigates(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, ctrlK)

	m = send(t, m, down)
	m = send(t, m, down)
	m = send(t, m, enter)

	assert.False(t, m.controller.Overlays.IsOpen())
	assert.Equal(t, state.ViewTeam, m.controller.View.Current())
	assert.Zero(t, pointerListeners(m))
}

func TestApp_ToggleTaskLayout(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, runes("3"))

	m = send(t, m, runes("v"))
	assert.Equal(t, state.TaskViewList, m.controller.TaskView)
	assert.Equal(t, state.TaskViewList, m.tasks.Mode())
	assert.Contains(t, m.keyHints(), "campaign: all")
}

func TestApp_ForceQuitUnmounts(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, ctrlK)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	keysN, pointersN := next.(Model).dispatcher.Listeners()
	assert.Zero(t, keysN)
	assert.Zero(t, pointersN)
}

func TestApp_ClickNotificationMarksRead(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, runes("n"))
	require.Equal(t, 2, m.controller.Notifications.UnreadCount())

	m = click(t, m, "notification-2")
	assert.Equal(t, 1, m.controller.Notifications.UnreadCount())
	assert.Equal(t, 1, m.notifications.Cursor())
	for _, n := range m.controller.Notifications.All() {
		if n.ID == 2 {
			assert.True(t, n.Read)
		}
	}
	assert.Equal(t, state.PanelNotifications, m.controller.Panel(), "panel stays open")

	m = click(t, m, "notification-3")
	assert.Equal(t, 1, m.controller.Notifications.UnreadCount(), "already read")
}

func TestApp_ClickPaletteResultNavigates(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, ctrlK)

	m = click(t, m, "palette-item-4")
	assert.False(t, m.controller.Overlays.IsOpen())
	assert.Equal(t, state.ViewContent, m.controller.View.Current())
	assert.Zero(t, pointerListeners(m))
}

func TestApp_CloseButtonClosesOverlay(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, runes("3"))
	m = click(t, m, "task-card-3")
	require.Equal(t, state.OverlayTaskDetail, m.controller.Overlays.Kind())

	m = click(t, m, ui.CloseZoneID)
	assert.False(t, m.controller.Overlays.IsOpen())
	assert.Equal(t, state.ViewTasks, m.controller.View.Current())
	assert.Zero(t, pointerListeners(m))
}

func TestApp_PressBelowClippedOverlayCloses(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})

	all, err := m.store.GetTasks(context.Background(), store.TaskFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)
	m = send(t, m, ui.OpenTaskMsg{Task: all[0]})
	require.True(t, m.controller.Overlays.IsOpen())

	r := m.overlaySurface()
	assert.LessOrEqual(t, r.Y+r.H, m.layout.HeaderHeight+m.layout.ContentHeight())

	// Status bar row, below where the overlay is clipped.
	m = send(t, m, press(r.X+2, 9))
	assert.False(t, m.controller.Overlays.IsOpen())
}
