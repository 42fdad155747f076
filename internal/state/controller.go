package state

import "github.com/nhle/marketing-hub/internal/model"

// Controller is the single source of truth for what the UI shows. It is
// owned by the composition root and shared by pointer.
type Controller struct {
	View          *ViewSelector
	Overlays      *Overlays
	Notifications *Notifications
	Prefs         DisplayPrefs
	TaskView      TaskView

	panel Panel
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithView sets the starting view; invalid values start on the dashboard.
func WithView(v ViewID) Option {
	return func(c *Controller) { c.View.Select(v) }
}

// WithPrefs sets the starting display preferences.
func WithPrefs(p DisplayPrefs) Option {
	return func(c *Controller) { c.Prefs = p }
}

// WithTaskView sets the starting task layout.
func WithTaskView(v TaskView) Option {
	return func(c *Controller) { c.TaskView = v }
}

// WithNotifications seeds the notification sequence.
func WithNotifications(seed []model.Notification) Option {
	return func(c *Controller) { c.Notifications = NewNotifications(seed) }
}

// NewController returns a controller on the dashboard with nothing open.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		View:          NewViewSelector(ViewDashboard),
		Overlays:      &Overlays{},
		Notifications: NewNotifications(nil),
		TaskView:      TaskViewKanban,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Overlays.Observe(func(_, next Overlay) {
		if next != nil {
			c.panel = PanelNone
		}
	})
	return c
}

// Panel returns the open dropdown panel.
func (c *Controller) Panel() Panel {
	return c.panel
}

// TogglePanel opens p, or closes it when it is already open. Panels are
// not shown while an overlay is open.
func (c *Controller) TogglePanel(p Panel) {
	if c.panel == p || c.Overlays.IsOpen() {
		c.panel = PanelNone
		return
	}
	c.panel = p
}

// ClosePanel closes any open dropdown panel.
func (c *Controller) ClosePanel() {
	c.panel = PanelNone
}

// Escape dismisses every overlay and panel, dropping any selected
// campaign or task along with its detail overlay.
func (c *Controller) Escape() {
	c.Overlays.CloseAll()
	c.panel = PanelNone
}

// ToggleTaskView switches the tasks view between kanban and list.
func (c *Controller) ToggleTaskView() {
	c.TaskView = c.TaskView.Toggle()
}
