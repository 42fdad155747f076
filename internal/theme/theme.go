package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/marketing-hub/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value). Which
// half is used follows the mode set by Apply.
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
	ColorSurface = lipgloss.AdaptiveColor{Dark: "#212529", Light: "#FFFFFF"}
)

// Apply switches every adaptive color to its dark or light variant.
func Apply(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// Dark reports whether the dark variants are in effect.
func Dark() bool {
	return lipgloss.HasDarkBackground()
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// TitleStyle is used for view and card titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps overlay content.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Background(ColorSurface)

// CardStyle frames stat cards and campaign cards.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// SelectedCardStyle frames the focused card.
var SelectedCardStyle = CardStyle.
	BorderForeground(ColorBlue)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// MutedStyle is used for secondary text such as timestamps.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// BadgeStyle renders the unread notification count.
var BadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorRed).
	Padding(0, 1)

// TagStyle renders a tag chip.
var TagStyle = lipgloss.NewStyle().
	Foreground(ColorMagenta)

// StatusStyle returns a color-coded style for a campaign, task, or
// feedback status label.
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.TaskStatusTodo, model.CampaignStatusDraft:
		return base.Foreground(ColorGray)
	case model.TaskStatusInProgress, model.CampaignStatusActive:
		return base.Foreground(ColorBlue)
	case model.TaskStatusReview, model.FeedbackPending:
		return base.Foreground(ColorYellow)
	case model.TaskStatusDone, model.CampaignStatusCompleted, model.FeedbackApproved:
		return base.Foreground(ColorGreen)
	case model.FeedbackNeedsChanges:
		return base.Foreground(ColorOrange)
	case model.FeedbackRejected:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for a priority label.
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	case model.PriorityLow:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// PresenceStyle returns the dot color for a team member's presence.
func PresenceStyle(presence string) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch presence {
	case model.PresenceOnline:
		return base.Foreground(ColorGreen)
	case model.PresenceAway:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}

// ChangeStyle colors a metric delta by sign.
func ChangeStyle(positive bool) lipgloss.Style {
	if positive {
		return lipgloss.NewStyle().Foreground(ColorGreen)
	}
	return lipgloss.NewStyle().Foreground(ColorRed)
}

// AccentColor maps a fixture color name to a palette color.
func AccentColor(name string) lipgloss.AdaptiveColor {
	switch name {
	case "blue":
		return ColorBlue
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "red":
		return ColorRed
	case "orange":
		return ColorOrange
	case "purple", "magenta":
		return ColorMagenta
	default:
		return ColorGray
	}
}
