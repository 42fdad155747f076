package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/input"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
)

func TestLayout_Dimensions(t *testing.T) {
	l := NewLayout(120, 40, false)
	assert.Equal(t, 24, l.SidebarWidth())
	assert.Equal(t, 96, l.ContentWidth())
	assert.Equal(t, 38, l.ContentHeight())

	x, y := l.ContentOrigin()
	assert.Equal(t, 24, x)
	assert.Equal(t, 1, y)

	l.SidebarCollapsed = true
	assert.Equal(t, 114, l.ContentWidth())

	tiny := NewLayout(3, 1, false)
	assert.Zero(t, tiny.ContentWidth())
	assert.Zero(t, tiny.ContentHeight())
}

func at(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// withZones gives l a fresh zone manager.
func withZones(t *testing.T, l *Layout) {
	t.Helper()
	l.Zones = zone.New()
	t.Cleanup(l.Zones.Close)
}

// scanFrame registers the zones in frame and waits until last is placed.
func scanFrame(t *testing.T, z *zone.Manager, frame, last string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_ = z.Scan(frame)
		info := z.Get(last)
		return info != nil && !info.IsZero()
	}, time.Second, 10*time.Millisecond)
}

func TestLayout_HeaderTargets(t *testing.T) {
	l := NewLayout(120, 40, false)
	info := HeaderInfo{Unread: 2}

	assert.Equal(t, TargetNone, l.HeaderTargetAt(at(1, 0)), "no zones yet")

	withZones(t, &l)
	scanFrame(t, l.Zones, l.RenderHeader(info), "header-notifications")

	assert.Equal(t, TargetMenu, l.HeaderTargetAt(at(1, 0)))
	assert.Equal(t, TargetNone, l.HeaderTargetAt(at(5, 0)), "brand is not clickable")
	assert.Equal(t, TargetSearch, l.HeaderTargetAt(at(20, 0)))
	assert.Equal(t, TargetNotifications, l.HeaderTargetAt(at(119, 0)))
	assert.Equal(t, TargetTheme, l.HeaderTargetAt(at(112, 0)))
	assert.Equal(t, TargetNone, l.HeaderTargetAt(at(80, 0)), "filler")
	assert.Equal(t, TargetNone, l.HeaderTargetAt(at(1, 1)), "below the header")
}

func TestLayout_RenderHeader(t *testing.T) {
	l := NewLayout(100, 30, false)

	header := l.RenderHeader(HeaderInfo{Unread: 2})
	assert.Equal(t, 100, lipgloss.Width(header))
	assert.Contains(t, header, "Marketing Hub")
	assert.Contains(t, header, "● 2")

	header = l.RenderHeader(HeaderInfo{Dark: true})
	assert.Contains(t, header, "dark")
	assert.Contains(t, header, "● 0")
}

func TestLayout_SidebarViewAt(t *testing.T) {
	l := NewLayout(120, 40, false)
	withZones(t, &l)
	user := model.User{Name: "Sarah Johnson"}
	frame := l.RenderWithFrame(
		l.RenderHeader(HeaderInfo{}),
		l.RenderSidebar(state.ViewDashboard, user),
		"",
		l.RenderStatusBar(""),
	)
	scanFrame(t, l.Zones, frame, "sidebar-feedback")

	v, ok := l.SidebarViewAt(at(3, 2))
	assert.True(t, ok)
	assert.Equal(t, state.ViewDashboard, v)

	v, ok = l.SidebarViewAt(at(3, 8))
	assert.True(t, ok)
	assert.Equal(t, state.ViewFeedback, v)

	_, ok = l.SidebarViewAt(at(3, 9))
	assert.False(t, ok)
	_, ok = l.SidebarViewAt(at(3, 1))
	assert.False(t, ok, "padding row")
	_, ok = l.SidebarViewAt(at(30, 3))
	assert.False(t, ok, "content area")

	collapsed := NewLayout(120, 40, true)
	withZones(t, &collapsed)
	scanFrame(t, collapsed.Zones, collapsed.RenderSidebar(state.ViewDashboard, user), "sidebar-feedback")
	v, ok = collapsed.SidebarViewAt(at(2, 3))
	assert.True(t, ok)
	assert.Equal(t, state.ViewTasks, v)
	_, ok = collapsed.SidebarViewAt(at(8, 3))
	assert.False(t, ok, "past the collapsed width")
}

func TestLayout_RenderSidebar(t *testing.T) {
	l := NewLayout(120, 20, false)
	user := model.User{Name: "Sarah Johnson", Role: "Marketing Lead"}

	out := l.RenderSidebar(state.ViewTasks, user)
	assert.Equal(t, l.SidebarWidth(), lipgloss.Width(out))
	assert.Equal(t, l.ContentHeight(), lipgloss.Height(out))
	assert.Contains(t, out, "Content Hub")
	assert.Contains(t, out, "SJ")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[3], "Tasks", "third navigation row")
}

func TestPlaceOverlay(t *testing.T) {
	overlay := lipgloss.NewStyle().Width(20).Height(5).Render("modal")

	out, r := PlaceOverlay(60, 15, overlay)
	assert.Equal(t, input.Rect{X: 20, Y: 5, W: 20, H: 5}, r)
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Equal(t, 15, lipgloss.Height(out))

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[5], "modal")

	_, r = PlaceOverlay(10, 3, overlay)
	assert.Equal(t, input.Rect{X: 0, Y: 0, W: 10, H: 3}, r, "clipped to the area")

	r = OverlayRect(60, 4, overlay)
	assert.Equal(t, input.Rect{X: 20, Y: 0, W: 20, H: 4}, r)
}

func TestLayout_RenderWithFrame(t *testing.T) {
	l := NewLayout(80, 12, true)
	out := l.RenderWithFrame(
		l.RenderHeader(HeaderInfo{}),
		l.RenderSidebar(state.ViewDashboard, model.User{Name: "Sarah Johnson"}),
		"hello",
		l.RenderStatusBar("q quit"),
	)
	assert.Equal(t, 12, lipgloss.Height(out))
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Marketing", Truncate("Marketing", 9))
	assert.Equal(t, "Market…", Truncate("Marketing", 7))
	assert.Equal(t, "", Truncate("Marketing", 0))
	assert.Equal(t, "ab  ", PadRight("ab", 4))
}

func TestAvatars(t *testing.T) {
	names := []string{"Sarah J.", "Mike R.", "Anna K.", "Lisa P."}
	out := Avatars(names, 3)
	assert.Contains(t, out, "SJ")
	assert.Contains(t, out, "AK")
	assert.NotContains(t, out, "LP")
	assert.Contains(t, out, "+1")
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("Launch the **Q4 product line**.", 60, false)
	assert.Contains(t, out, "product")
	assert.NotContains(t, out, "**")
}
