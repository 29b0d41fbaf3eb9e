package viz

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
	"github.com/matsen/citebridge/internal/engine"
	"github.com/matsen/citebridge/internal/paper"
)

func testDataset() *dataset.Dataset {
	llmTopics := []cluster.Topic{
		{ClusterKey: "agents", Topic: "LLM Agents", Size: 1, PaperIDs: []string{"a1"}},
	}
	psychTopics := []cluster.Topic{
		{ClusterKey: "social", Topic: "Social Psychology", Size: 1, PaperIDs: []string{"p1"}},
	}
	subs := []cluster.Subtopic{
		{ParentClusterKey: "social", SubClusterKey: "social-0", Topic: "Identity",
			TheoryNames: []string{"Social Identity Theory"}},
	}
	theories := []cluster.Theory{
		{ParentClusterKey: "social", Name: "Social Identity Theory", CitationCount: 10,
			DocumentTitles: []string{"Social Identity and Groups"}},
	}
	llmPapers := []paper.LLMPaper{
		{ID: "a1", ReferencedPaperIDs: []string{"p1"}, PublicationDate: "2023-01-15"},
	}
	psychPapers := []paper.PsychPaper{
		{ID: "p1", Title: "Social Identity and Groups"},
	}
	return dataset.New(llmTopics, psychTopics, subs, theories, llmPapers, psychPapers)
}

func TestToCytoscapeJSON(t *testing.T) {
	g := engine.BuildGraph(testDataset())

	jsonStr, err := ToCytoscapeJSON(g)
	if err != nil {
		t.Fatalf("ToCytoscapeJSON: %v", err)
	}

	var elements CytoscapeElements
	if err := json.Unmarshal([]byte(jsonStr), &elements); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(elements.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(elements.Nodes))
	}
	if elements.Nodes[0].Data.ID != "llm:agents" {
		t.Errorf("node 0 ID = %q, want llm:agents", elements.Nodes[0].Data.ID)
	}

	if len(elements.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(elements.Edges))
	}
	edge := elements.Edges[0].Data
	if edge.Source != "llm:agents" || edge.Target != "psych:social" || edge.Weight != 1 {
		t.Errorf("unexpected edge: %+v", edge)
	}
	if edge.ID == "" {
		t.Error("edge has empty ID")
	}
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(testDataset())

	if d.IsEmpty() {
		t.Fatal("dashboard empty for non-empty dataset")
	}
	if len(d.Series[""]) == 0 {
		t.Error("all-topics series missing")
	}
	if len(d.Series["agents"]) == 0 {
		t.Error("per-topic series missing")
	}
	if len(d.PsychSeries["agents"]) == 0 {
		t.Error("psych breakdown series missing")
	}
	if len(d.TheoryTables["social"]) == 0 {
		t.Error("theory table missing")
	}
	if len(d.Distributions["Social Identity Theory"]) == 0 {
		t.Error("theory distribution missing")
	}
}

func TestGenerateHTML(t *testing.T) {
	d := BuildDashboard(testDataset())

	html, err := GenerateHTML(d, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"cytoscape",
		"llm:agents",
		"Social Psychology",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if !strings.Contains(html, "unpkg.com/cytoscape") {
		t.Error("CDN script tag missing in online mode")
	}
}

// Without an embedded bundle, offline generation must fail rather than
// emit a page with an empty script tag that cannot render its graph.
func TestGenerateHTML_OfflineWithoutBundle(t *testing.T) {
	d := BuildDashboard(testDataset())

	_, err := GenerateHTML(d, HTMLOptions{Offline: true})
	if !errors.Is(err, ErrNoOfflineBundle) {
		t.Errorf("got err %v, want %v", err, ErrNoOfflineBundle)
	}
}

func TestGenerateHTML_OfflineWithBundle(t *testing.T) {
	defer func(old string) { cytoscapeJS = old }(cytoscapeJS)
	cytoscapeJS = "var cytoscape = function(){};"

	d := BuildDashboard(testDataset())

	html, err := GenerateHTML(d, HTMLOptions{Offline: true})
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if strings.Contains(html, "<script></script>") {
		t.Error("offline page contains an empty script tag")
	}
	if !strings.Contains(html, "var cytoscape = function(){};") {
		t.Error("offline page does not inline the bundle")
	}
	if strings.Contains(html, "unpkg.com/cytoscape") {
		t.Error("offline page still references the CDN")
	}
}

func TestGenerateHTML_InvalidLayout(t *testing.T) {
	d := BuildDashboard(testDataset())

	if _, err := GenerateHTML(d, HTMLOptions{Layout: "spiral"}); err == nil {
		t.Error("expected error for invalid layout")
	}
}

func TestGenerateHTML_NilData(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil dashboard data")
	}
}

func TestGenerateHTML_EmptyDashboard(t *testing.T) {
	d := BuildDashboard(dataset.New(nil, nil, nil, nil, nil, nil))

	html, err := GenerateHTML(d, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(html, "No topic data") {
		t.Errorf("empty-state HTML missing placeholder: %s", html)
	}
}

func TestValidateLayout(t *testing.T) {
	for _, layout := range append([]string{""}, ValidLayouts...) {
		if err := validateLayout(layout); err != nil {
			t.Errorf("validateLayout(%q) = %v", layout, err)
		}
	}
	if err := validateLayout("spiral"); err == nil {
		t.Error("validateLayout(spiral) = nil, want error")
	}
}
