package viz

import (
	"github.com/matsen/citebridge/internal/dataset"
	"github.com/matsen/citebridge/internal/engine"
)

// BuildDashboard precomputes all four dashboard views from the loaded
// dataset: the bipartite topic graph, per-topic cumulative series, the
// theory table of every psychology topic, and the distribution of every
// theory across LLM topics.
func BuildDashboard(ds *dataset.Dataset) *DashboardData {
	d := &DashboardData{
		Graph:         engine.BuildGraph(ds),
		Series:        make(map[string][]engine.SeriesPoint),
		PsychSeries:   make(map[string][]engine.TopicSeries),
		TheoryTables:  make(map[string][]engine.TheoryRow),
		Distributions: make(map[string][]engine.DistributionRow),
	}

	d.Series[""] = engine.CumulativeSeries(ds, "")
	for _, t := range ds.LLMTopics {
		d.Series[t.ClusterKey] = engine.CumulativeSeries(ds, t.ClusterKey)
		d.PsychSeries[t.ClusterKey] = engine.TopicSeriesByPsych(ds, t.ClusterKey)
	}

	for _, t := range ds.PsychTopics {
		d.TheoryTables[t.ClusterKey] = engine.TheoryTable(ds, t.ClusterKey)
	}

	for _, th := range ds.Theories {
		if _, ok := d.Distributions[th.Name]; ok {
			continue // first pool entry wins, matching the engine's name scan
		}
		d.Distributions[th.Name] = engine.TheoryDistribution(ds, th.Name)
	}

	return d
}
