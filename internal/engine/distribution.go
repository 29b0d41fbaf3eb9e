package engine

import (
	"sort"

	"github.com/matsen/citebridge/internal/dataset"
)

// DistributionRow is one LLM topic's citation count toward a selected
// theory's resolved paper set.
type DistributionRow struct {
	TopicKey   string `json:"topic_key"`
	TopicLabel string `json:"topic_label"`
	Count      int    `json:"count"`
}

// TheoryDistribution counts, per LLM topic, the citation edges targeting
// papers associated with the named theory.
//
// The theory is located by name across all psychology topics (this view
// receives the name without its parent key). Its document titles resolve to
// psychology paper IDs through the normalized title join; orphan titles are
// dropped. Every LLM topic appears in the result, zero counts included,
// sorted by descending count with declaration order breaking ties. An
// unknown theory name yields an empty result.
func TheoryDistribution(ds *dataset.Dataset, theoryName string) []DistributionRow {
	titles, found := theoryDocumentTitles(ds, theoryName)
	if !found {
		return nil
	}

	target := make(map[string]bool, len(titles))
	for _, title := range titles {
		if id, ok := ds.PsychPaperIDByTitle(title); ok {
			target[id] = true
		}
	}

	sourceTopic := paperTopicIndex(llmMembership(ds))

	counts := make(map[string]int, len(ds.LLMTopics))
	for _, e := range DeriveCitationEdges(ds) {
		if !target[e.PsychPaperID] {
			continue
		}
		if src, ok := sourceTopic[e.LLMPaperID]; ok {
			counts[src]++
		}
	}

	rows := make([]DistributionRow, 0, len(ds.LLMTopics))
	for _, t := range ds.LLMTopics {
		rows = append(rows, DistributionRow{
			TopicKey:   t.ClusterKey,
			TopicLabel: t.Topic,
			Count:      counts[t.ClusterKey],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// theoryDocumentTitles scans the theory pool for the first theory with the
// given name and returns its document titles.
func theoryDocumentTitles(ds *dataset.Dataset, theoryName string) ([]string, bool) {
	for _, th := range ds.Theories {
		if th.Name == theoryName {
			return th.DocumentTitles, true
		}
	}
	return nil, false
}
