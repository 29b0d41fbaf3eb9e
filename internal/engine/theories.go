package engine

import (
	"sort"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
)

// TheoryRow is one (subtopic, theory) pairing in the theory table of a
// selected psychology topic.
type TheoryRow struct {
	SubClusterKey string `json:"sub_cluster_key"`
	SubtopicLabel string `json:"subtopic_label"`
	TheoryName    string `json:"theory_name"` // pool name, not the raw subtopic reference
	CitationCount int    `json:"citation_count"`
	TopThree      bool   `json:"top_three"`
}

// TheoryTable joins a psychology topic's subtopics against its theory pool
// and produces the ordered theory table.
//
// Each subtopic theory reference resolves by exact pool name first, then by
// normalized name; unresolved references are dropped. The three theories
// with the highest citation counts within the topic are marked TopThree,
// ties broken by pool declaration order. Rows are ordered by subtopic
// declaration order, then by descending citation count within each
// subtopic. An unknown topic key yields an empty table.
func TheoryTable(ds *dataset.Dataset, psychTopicKey string) []TheoryRow {
	subs := ds.SubtopicsOf(psychTopicKey)
	pool := ds.TheoriesOf(psychTopicKey)
	if len(subs) == 0 || len(pool) == 0 {
		return nil
	}

	byName := make(map[string]cluster.Theory, len(pool))
	byNormalized := make(map[string]cluster.Theory, len(pool))
	for _, th := range pool {
		if _, ok := byName[th.Name]; !ok {
			byName[th.Name] = th
		}
		norm := NormalizeTheoryName(th.Name)
		if _, ok := byNormalized[norm]; !ok {
			byNormalized[norm] = th
		}
	}

	top := topThreeNames(pool)

	var rows []TheoryRow
	for _, s := range subs {
		var subRows []TheoryRow
		for _, name := range s.TheoryNames {
			th, ok := byName[name]
			if !ok {
				th, ok = byNormalized[NormalizeTheoryName(name)]
			}
			if !ok {
				continue // unresolved reference, dropped
			}
			subRows = append(subRows, TheoryRow{
				SubClusterKey: s.SubClusterKey,
				SubtopicLabel: s.Topic,
				TheoryName:    th.Name,
				CitationCount: th.CitationCount,
				TopThree:      top[th.Name],
			})
		}
		sort.SliceStable(subRows, func(i, j int) bool {
			return subRows[i].CitationCount > subRows[j].CitationCount
		})
		rows = append(rows, subRows...)
	}
	return rows
}

// SortRowsByCitations re-sorts a theory table by descending citation count
// alone, ignoring subtopic grouping. The input is not modified.
func SortRowsByCitations(rows []TheoryRow) []TheoryRow {
	sorted := make([]TheoryRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CitationCount > sorted[j].CitationCount
	})
	return sorted
}

// topThreeNames marks the three highest-cited theories of a topic's pool.
// A stable sort keeps pool declaration order on citation-count ties. Pools
// with fewer than three theories mark all of them.
func topThreeNames(pool []cluster.Theory) map[string]bool {
	ranked := make([]cluster.Theory, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CitationCount > ranked[j].CitationCount
	})

	n := 3
	if len(ranked) < n {
		n = len(ranked)
	}

	top := make(map[string]bool, n)
	for _, th := range ranked[:n] {
		top[th.Name] = true
	}
	return top
}
