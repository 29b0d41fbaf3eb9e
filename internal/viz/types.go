// Package viz renders the citation dashboard as self-contained HTML.
package viz

import "github.com/matsen/citebridge/internal/engine"

// DashboardData contains every derived view the dashboard needs, precomputed
// so the rendered page is fully interactive without a server. Map keys are
// cluster keys (or theory names); the empty series key is the all-topics
// series.
type DashboardData struct {
	Graph         engine.Graph                        `json:"graph"`
	Series        map[string][]engine.SeriesPoint     `json:"series"`
	PsychSeries   map[string][]engine.TopicSeries     `json:"psych_series"`
	TheoryTables  map[string][]engine.TheoryRow       `json:"theory_tables"`
	Distributions map[string][]engine.DistributionRow `json:"distributions"`
}

// IsEmpty returns true if the dashboard has no topic nodes.
func (d *DashboardData) IsEmpty() bool {
	return len(d.Graph.Nodes) == 0
}
