package model

import "strings"

// Presence values for team members.
const (
	PresenceOnline  = "online"
	PresenceAway    = "away"
	PresenceOffline = "offline"
)

// User is the signed-in operator shown in the sidebar.
type User struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Email string `json:"email" yaml:"email" mapstructure:"email"`
	Role  string `json:"role" yaml:"role" mapstructure:"role"`
}

// TeamMember is a person on the marketing team roster.
type TeamMember struct {
	ID       int    `json:"id" db:"id" yaml:"id"`
	Name     string `json:"name" db:"name" yaml:"name"`
	Role     string `json:"role" db:"role" yaml:"role"`
	Email    string `json:"email" db:"email" yaml:"email"`
	Presence string `json:"presence" db:"presence" yaml:"status"`
	Tasks    int    `json:"tasks" db:"tasks" yaml:"tasks"`
}

// Initials returns the first letter of each word in name, e.g. "Mike R." -> "MR".
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
