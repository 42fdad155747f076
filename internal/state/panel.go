package state

// Panel is a non-modal dropdown anchored to the top bar.
type Panel int

const (
	PanelNone Panel = iota
	PanelNotifications
	PanelHelp
)

// String returns a short name for logging.
func (p Panel) String() string {
	switch p {
	case PanelNotifications:
		return "notifications"
	case PanelHelp:
		return "help"
	default:
		return "none"
	}
}
