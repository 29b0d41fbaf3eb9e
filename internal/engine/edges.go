// Package engine computes the derived views of the citation graph. All
// functions are pure over a loaded dataset: nothing is cached, nothing is
// mutated, and every call recomputes its result from the source relations.
package engine

import "github.com/matsen/citebridge/internal/dataset"

// CitationEdge is a directed relationship from one LLM paper to one
// psychology paper it references.
type CitationEdge struct {
	LLMPaperID   string `json:"llm_paper_id"`
	PsychPaperID string `json:"psych_paper_id"`
}

// DeriveCitationEdges recomputes the citation-edge relation from the LLM
// papers' reference lists. An edge exists iff an LLM paper's reference list
// contains a known psychology paper's ID; references to unknown IDs are
// skipped and duplicate references contribute a single edge.
func DeriveCitationEdges(ds *dataset.Dataset) []CitationEdge {
	var edges []CitationEdge
	for _, p := range ds.LLMPapers {
		seen := make(map[string]bool, len(p.ReferencedPaperIDs))
		for _, ref := range p.ReferencedPaperIDs {
			if seen[ref] || !ds.HasPsychPaper(ref) {
				continue
			}
			seen[ref] = true
			edges = append(edges, CitationEdge{LLMPaperID: p.ID, PsychPaperID: ref})
		}
	}
	return edges
}

// paperTopicIndex maps paper IDs to the cluster key of the topic that
// contains them, for one side of the graph. Built per aggregation call so
// edge counting stays linear in the number of citation edges.
func paperTopicIndex(topics []topicMembership) map[string]string {
	idx := make(map[string]string)
	for _, t := range topics {
		for _, id := range t.paperIDs {
			idx[id] = t.key
		}
	}
	return idx
}

type topicMembership struct {
	key      string
	paperIDs []string
}

func llmMembership(ds *dataset.Dataset) []topicMembership {
	ms := make([]topicMembership, 0, len(ds.LLMTopics))
	for _, t := range ds.LLMTopics {
		ms = append(ms, topicMembership{key: t.ClusterKey, paperIDs: t.PaperIDs})
	}
	return ms
}

func psychMembership(ds *dataset.Dataset) []topicMembership {
	ms := make([]topicMembership, 0, len(ds.PsychTopics))
	for _, t := range ds.PsychTopics {
		ms = append(ms, topicMembership{key: t.ClusterKey, paperIDs: t.PaperIDs})
	}
	return ms
}
