package engine

import (
	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
)

// Graph is the full bipartite topic graph: one node per topic on each side
// and one weighted edge per topic pair connected by at least one citation.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents one topic cluster in the bipartite graph.
type Node struct {
	ID           string       `json:"id"` // side-qualified, unique across the graph
	ClusterKey   string       `json:"cluster_key"`
	Label        string       `json:"label"`
	Side         cluster.Side `json:"side"`
	ClusterIndex int          `json:"cluster_index"` // ordinal within its side, for color assignment
	Size         int          `json:"size"`
}

// Edge is a weighted link between an LLM topic and a psychology topic.
// Weight is the number of citation pairs crossing both topics' paper sets.
type Edge struct {
	SourceTopic string `json:"source_topic"`
	TargetTopic string `json:"target_topic"`
	Weight      int    `json:"weight"`
}

// NodeID returns the side-qualified node identifier for a cluster key.
// LLM and psychology cluster keys live in disjoint spaces and are never
// compared directly, so node IDs carry the side prefix.
func NodeID(side cluster.Side, clusterKey string) string {
	return string(side) + ":" + clusterKey
}

// BuildGraph assembles the bipartite node set and the weighted edge set.
// Edges with weight zero are omitted. Citation edges are bucketed through
// paper-to-topic indexes, so the construction is linear in the number of
// citation edges rather than quadratic in topic pairs.
func BuildGraph(ds *dataset.Dataset) Graph {
	nodes := make([]Node, 0, len(ds.LLMTopics)+len(ds.PsychTopics))
	for i, t := range ds.LLMTopics {
		nodes = append(nodes, Node{
			ID:           NodeID(cluster.SideLLM, t.ClusterKey),
			ClusterKey:   t.ClusterKey,
			Label:        t.Topic,
			Side:         cluster.SideLLM,
			ClusterIndex: i,
			Size:         t.Size,
		})
	}
	for i, t := range ds.PsychTopics {
		nodes = append(nodes, Node{
			ID:           NodeID(cluster.SidePsych, t.ClusterKey),
			ClusterKey:   t.ClusterKey,
			Label:        t.Topic,
			Side:         cluster.SidePsych,
			ClusterIndex: i,
			Size:         t.Size,
		})
	}

	sourceTopic := paperTopicIndex(llmMembership(ds))
	targetTopic := paperTopicIndex(psychMembership(ds))

	weights := make(map[[2]string]int)
	for _, e := range DeriveCitationEdges(ds) {
		src, ok := sourceTopic[e.LLMPaperID]
		if !ok {
			continue
		}
		dst, ok := targetTopic[e.PsychPaperID]
		if !ok {
			continue
		}
		weights[[2]string{src, dst}]++
	}

	// Emit edges in deterministic topic-declaration order.
	var edges []Edge
	for _, lt := range ds.LLMTopics {
		for _, pt := range ds.PsychTopics {
			w := weights[[2]string{lt.ClusterKey, pt.ClusterKey}]
			if w == 0 {
				continue
			}
			edges = append(edges, Edge{
				SourceTopic: lt.ClusterKey,
				TargetTopic: pt.ClusterKey,
				Weight:      w,
			})
		}
	}

	return Graph{Nodes: nodes, Edges: edges}
}
