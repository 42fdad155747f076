package model

// Notification is an activity alert shown in the top-bar dropdown.
type Notification struct {
	// ID is unique within the notification sequence.
	ID int `json:"id" yaml:"id"`

	// Message is the human-readable notification text.
	Message string `json:"message" yaml:"message"`

	// TimeLabel is a preformatted relative time such as "5 minutes ago".
	TimeLabel string `json:"time_label" yaml:"time"`

	// Read indicates whether the user has seen this notification.
	Read bool `json:"read" yaml:"read"`
}
