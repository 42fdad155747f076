package ui

import (
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
)

// OpenCampaignMsg asks the root model to open the campaign detail overlay.
type OpenCampaignMsg struct {
	Campaign model.Campaign
}

// OpenTaskMsg asks the root model to open the task detail overlay.
type OpenTaskMsg struct {
	Task model.Task
}

// NavigateMsg asks the root model to close overlays and switch views.
type NavigateMsg struct {
	View state.ViewID
}

// ErrorMsg reports a failed store operation. The root model logs it and
// shows Op in the status bar.
type ErrorMsg struct {
	Op  string
	Err error
}

func (e ErrorMsg) Error() string {
	return e.Op + ": " + e.Err.Error()
}
