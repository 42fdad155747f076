package model

import "strings"

// Metric groups.
const (
	MetricGroupDashboard = "dashboard"
	MetricGroupAnalytics = "analytics"
)

// Metric is a headline number displayed on a stat card.
type Metric struct {
	ID     int    `json:"id" db:"id" yaml:"id"`
	Group  string `json:"group" db:"metric_group" yaml:"group"`
	Title  string `json:"title" db:"title" yaml:"title"`
	Value  string `json:"value" db:"value" yaml:"value"`
	Change string `json:"change" db:"change" yaml:"change"`
	Color  string `json:"color" db:"color" yaml:"color"`
}

// Positive reports whether the change label denotes an increase.
func (m Metric) Positive() bool {
	return strings.HasPrefix(m.Change, "+")
}

// Performance is one row of the campaign performance table.
type Performance struct {
	ID          int    `json:"id" db:"id" yaml:"id"`
	Campaign    string `json:"campaign" db:"campaign" yaml:"name"`
	Impressions string `json:"impressions" db:"impressions" yaml:"impressions"`
	Clicks      string `json:"clicks" db:"clicks" yaml:"clicks"`
	Conversions string `json:"conversions" db:"conversions" yaml:"conversions"`
	ROI         string `json:"roi" db:"roi" yaml:"roi"`
	Status      string `json:"status" db:"status" yaml:"status"`
}
