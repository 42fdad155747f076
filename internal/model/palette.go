package model

// Palette item kinds.
const (
	PaletteCampaign = "Campaign"
	PaletteTask     = "Task"
	PaletteTeam     = "Team"
	PaletteFile     = "File"
)

// PaletteItem is an entry in the command palette's fixed result list.
type PaletteItem struct {
	ID   int    `json:"id" db:"id" yaml:"id"`
	Kind string `json:"kind" db:"kind" yaml:"type"`
	Name string `json:"name" db:"name" yaml:"name"`
}
