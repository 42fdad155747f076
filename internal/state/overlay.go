package state

import "github.com/nhle/marketing-hub/internal/model"

// OverlayKind names the overlay variants.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayCommandPalette
	OverlayCampaignDetail
	OverlayTaskDetail
)

// String returns a short name for logging.
func (k OverlayKind) String() string {
	switch k {
	case OverlayCommandPalette:
		return "command-palette"
	case OverlayCampaignDetail:
		return "campaign-detail"
	case OverlayTaskDetail:
		return "task-detail"
	default:
		return "none"
	}
}

// Overlay is a sealed sum type over the modal surfaces. A nil Overlay
// means nothing is open.
type Overlay interface {
	overlay() // marker method to restrict implementations
	Kind() OverlayKind
}

// CommandPalette is the quick-jump search overlay.
type CommandPalette struct{}

// CampaignDetail shows one campaign.
type CampaignDetail struct {
	Campaign model.Campaign
}

// TaskDetail shows one task.
type TaskDetail struct {
	Task model.Task
}

func (CommandPalette) overlay() {}
func (CampaignDetail) overlay() {}
func (TaskDetail) overlay()     {}

func (CommandPalette) Kind() OverlayKind { return OverlayCommandPalette }
func (CampaignDetail) Kind() OverlayKind { return OverlayCampaignDetail }
func (TaskDetail) Kind() OverlayKind     { return OverlayTaskDetail }

// KindOf returns the kind of o, treating nil as OverlayNone.
func KindOf(o Overlay) OverlayKind {
	if o == nil {
		return OverlayNone
	}
	return o.Kind()
}

// OverlayObserver is told about every overlay change. prev or next is nil
// when nothing was or is open.
type OverlayObserver func(prev, next Overlay)

// Overlays tracks the single active overlay. Opening any overlay replaces
// the one currently open.
type Overlays struct {
	active    Overlay
	observers []OverlayObserver
}

// Observe registers fn to run after each change.
func (o *Overlays) Observe(fn OverlayObserver) {
	o.observers = append(o.observers, fn)
}

// OpenCommandPalette makes the command palette the active overlay.
func (o *Overlays) OpenCommandPalette() {
	o.set(CommandPalette{})
}

// OpenCampaignDetail makes the detail view of c the active overlay.
func (o *Overlays) OpenCampaignDetail(c model.Campaign) {
	o.set(CampaignDetail{Campaign: c})
}

// OpenTaskDetail makes the detail view of t the active overlay.
func (o *Overlays) OpenTaskDetail(t model.Task) {
	o.set(TaskDetail{Task: t})
}

// CloseAll closes whatever is open. Safe to call when nothing is.
func (o *Overlays) CloseAll() {
	o.set(nil)
}

// Active returns the open overlay, or nil.
func (o *Overlays) Active() Overlay {
	return o.active
}

// Kind returns the kind of the open overlay.
func (o *Overlays) Kind() OverlayKind {
	return KindOf(o.active)
}

// IsOpen reports whether any overlay is open.
func (o *Overlays) IsOpen() bool {
	return o.active != nil
}

func (o *Overlays) set(next Overlay) {
	prev := o.active
	if prev == nil && next == nil {
		return
	}
	o.active = next
	for _, fn := range o.observers {
		fn(prev, next)
	}
}
