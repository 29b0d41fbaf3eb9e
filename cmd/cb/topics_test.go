package main

import (
	"testing"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
)

func TestTopicSummaries(t *testing.T) {
	ds := dataset.New(
		[]cluster.Topic{{ClusterKey: "agents", Topic: "LLM Agents", Size: 2, PaperIDs: []string{"a1", "a2"}}},
		[]cluster.Topic{{ClusterKey: "social", Topic: "Social Psychology", Size: 1, PaperIDs: []string{"p1"}}},
		nil, nil, nil, nil,
	)

	all := topicSummaries(ds, "")
	if len(all) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(all), all)
	}
	if all[0].Side != cluster.SideLLM || all[1].Side != cluster.SidePsych {
		t.Errorf("rows out of side order: %v", all)
	}

	llm := topicSummaries(ds, "llm")
	if len(llm) != 1 || llm[0].ClusterKey != "agents" || llm[0].Papers != 2 {
		t.Errorf("llm rows = %v", llm)
	}

	psych := topicSummaries(ds, "psych")
	if len(psych) != 1 || psych[0].ClusterKey != "social" {
		t.Errorf("psych rows = %v", psych)
	}
}
