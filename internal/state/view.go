package state

import "strings"

// ViewID identifies the primary content area.
type ViewID string

const (
	ViewDashboard ViewID = "dashboard"
	ViewCampaigns ViewID = "campaigns"
	ViewTasks     ViewID = "tasks"
	ViewContent   ViewID = "content"
	ViewTeam      ViewID = "team"
	ViewAnalytics ViewID = "analytics"
	ViewFeedback  ViewID = "feedback"
)

// views is the navigation order.
var views = []ViewID{
	ViewDashboard,
	ViewCampaigns,
	ViewTasks,
	ViewContent,
	ViewTeam,
	ViewAnalytics,
	ViewFeedback,
}

var viewLabels = map[ViewID]string{
	ViewDashboard: "Dashboard",
	ViewCampaigns: "Campaigns",
	ViewTasks:     "Tasks",
	ViewContent:   "Content Hub",
	ViewTeam:      "Team",
	ViewAnalytics: "Analytics",
	ViewFeedback:  "Feedback",
}

// Views returns every view in navigation order.
func Views() []ViewID {
	out := make([]ViewID, len(views))
	copy(out, views)
	return out
}

// Valid reports whether v is a member of the enumeration.
func (v ViewID) Valid() bool {
	_, ok := viewLabels[v]
	return ok
}

// Label returns the navigation menu label.
func (v ViewID) Label() string {
	if label, ok := viewLabels[v]; ok {
		return label
	}
	return viewLabels[ViewDashboard]
}

// Index returns the position of v in navigation order, or 0 when invalid.
func (v ViewID) Index() int {
	for i, candidate := range views {
		if candidate == v {
			return i
		}
	}
	return 0
}

// ParseView converts free text into a ViewID. Matching is case-insensitive
// and ignores surrounding space; anything unrecognized yields ViewDashboard.
func ParseView(s string) ViewID {
	v := ViewID(strings.ToLower(strings.TrimSpace(s)))
	if v.Valid() {
		return v
	}
	return ViewDashboard
}

// ViewAt returns the view at position i in navigation order, falling back
// to ViewDashboard when i is out of range.
func ViewAt(i int) ViewID {
	if i < 0 || i >= len(views) {
		return ViewDashboard
	}
	return views[i]
}

// ViewSelector tracks the current primary view.
type ViewSelector struct {
	current ViewID
}

// NewViewSelector starts on v, or on ViewDashboard when v is invalid.
func NewViewSelector(v ViewID) *ViewSelector {
	s := &ViewSelector{}
	s.Select(v)
	return s
}

// Current returns the active view.
func (s *ViewSelector) Current() ViewID {
	return s.current
}

// Select makes v current. Values outside the enumeration select ViewDashboard.
func (s *ViewSelector) Select(v ViewID) {
	if !v.Valid() {
		v = ViewDashboard
	}
	s.current = v
}

// SelectName parses name and selects the result.
func (s *ViewSelector) SelectName(name string) {
	s.Select(ParseView(name))
}

// Next selects the following view, wrapping around.
func (s *ViewSelector) Next() {
	s.current = views[(s.current.Index()+1)%len(views)]
}

// Prev selects the preceding view, wrapping around.
func (s *ViewSelector) Prev() {
	s.current = views[(s.current.Index()+len(views)-1)%len(views)]
}
