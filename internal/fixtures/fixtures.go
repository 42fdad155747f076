// Package fixtures holds the embedded sample data every session starts from.
package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nhle/marketing-hub/internal/model"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the full set of sample records loaded at startup.
type Seed struct {
	Campaigns        []model.Campaign        `yaml:"campaigns"`
	Tasks            []model.Task            `yaml:"tasks"`
	Comments         []model.Comment         `yaml:"comments"`
	Notifications    []model.Notification    `yaml:"notifications"`
	Team             []model.TeamMember      `yaml:"team"`
	Folders          []model.Folder          `yaml:"folders"`
	Files            []model.File            `yaml:"files"`
	Feedback         []model.FeedbackRequest `yaml:"feedback"`
	FeedbackActivity []model.Activity        `yaml:"feedback_activity"`
	Metrics          []model.Metric          `yaml:"metrics"`
	Performance      []model.Performance     `yaml:"performance"`
	Palette          []model.PaletteItem     `yaml:"palette"`
}

// Load parses the embedded seed file.
func Load() (*Seed, error) {
	return Parse(seedYAML)
}

// Parse decodes a seed document and checks that record ids are unique
// within each collection.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing seed data: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Seed) validate() error {
	checks := []struct {
		name string
		ids  []int
	}{
		{"campaigns", idsOf(s.Campaigns, func(c model.Campaign) int { return c.ID })},
		{"tasks", idsOf(s.Tasks, func(t model.Task) int { return t.ID })},
		{"notifications", idsOf(s.Notifications, func(n model.Notification) int { return n.ID })},
		{"team", idsOf(s.Team, func(m model.TeamMember) int { return m.ID })},
		{"feedback", idsOf(s.Feedback, func(f model.FeedbackRequest) int { return f.ID })},
	}
	for _, c := range checks {
		seen := make(map[int]bool, len(c.ids))
		for _, id := range c.ids {
			if seen[id] {
				return fmt.Errorf("seed data: duplicate id %d in %s", id, c.name)
			}
			seen[id] = true
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) int) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
