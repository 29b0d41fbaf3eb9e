package engine

import (
	"testing"

	"github.com/matsen/citebridge/internal/cluster"
)

func TestDeriveCitationEdges(t *testing.T) {
	ds := testDataset()

	edges := DeriveCitationEdges(ds)

	want := []CitationEdge{
		{LLMPaperID: "a1", PsychPaperID: "p1"},
		{LLMPaperID: "a1", PsychPaperID: "p3"},
		{LLMPaperID: "a2", PsychPaperID: "p1"},
		{LLMPaperID: "a2", PsychPaperID: "p2"},
		{LLMPaperID: "a3", PsychPaperID: "p3"},
	}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %v", len(edges), len(want), edges)
	}
	for i, e := range edges {
		if e != want[i] {
			t.Errorf("edge %d = %v, want %v", i, e, want[i])
		}
	}
}

func TestBuildGraph(t *testing.T) {
	ds := testDataset()

	g := BuildGraph(ds)

	if len(g.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(g.Nodes))
	}
	first := g.Nodes[0]
	if first.ID != "llm:agents" || first.Side != cluster.SideLLM || first.ClusterIndex != 0 {
		t.Errorf("unexpected first node: %+v", first)
	}
	last := g.Nodes[3]
	if last.ID != "psych:cognition" || last.Side != cluster.SidePsych || last.ClusterIndex != 1 {
		t.Errorf("unexpected last node: %+v", last)
	}

	want := []Edge{
		{SourceTopic: "agents", TargetTopic: "social", Weight: 3},
		{SourceTopic: "agents", TargetTopic: "cognition", Weight: 1},
		{SourceTopic: "reasoning", TargetTopic: "cognition", Weight: 1},
	}
	if len(g.Edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %v", len(g.Edges), len(want), g.Edges)
	}
	for i, e := range g.Edges {
		if e != want[i] {
			t.Errorf("edge %d = %v, want %v", i, e, want[i])
		}
	}
}

// A topic pair with no crossing citations must not appear at all, rather
// than appearing with weight zero.
func TestBuildGraph_OmitsZeroWeightEdges(t *testing.T) {
	ds := testDataset()

	for _, e := range BuildGraph(ds).Edges {
		if e.SourceTopic == "reasoning" && e.TargetTopic == "social" {
			t.Errorf("unexpected edge for unconnected pair: %+v", e)
		}
		if e.Weight == 0 {
			t.Errorf("edge with zero weight emitted: %+v", e)
		}
	}
}

func TestNodeID(t *testing.T) {
	if got := NodeID(cluster.SideLLM, "agents"); got != "llm:agents" {
		t.Errorf("NodeID = %q, want %q", got, "llm:agents")
	}
	if got := NodeID(cluster.SidePsych, "agents"); got != "psych:agents" {
		t.Errorf("NodeID = %q, want %q", got, "psych:agents")
	}
}
