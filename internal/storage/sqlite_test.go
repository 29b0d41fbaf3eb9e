package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/paper"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "citebridge.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRebuildTopics(t *testing.T) {
	db := testDB(t)

	llm := []cluster.Topic{
		{ClusterKey: "agents", Topic: "LLM Agents", Size: 2, PaperIDs: []string{"a1", "a2"}},
		{ClusterKey: "reasoning", Topic: "Reasoning", Size: 1, PaperIDs: []string{"a3"}},
	}
	psych := []cluster.Topic{
		{ClusterKey: "social", Topic: "Social Psychology", Size: 1, PaperIDs: []string{"p1"}},
	}

	if n, err := db.RebuildTopics(cluster.SideLLM, llm); err != nil || n != 2 {
		t.Fatalf("RebuildTopics(llm) = %d, %v", n, err)
	}
	if n, err := db.RebuildTopics(cluster.SidePsych, psych); err != nil || n != 1 {
		t.Fatalf("RebuildTopics(psych) = %d, %v", n, err)
	}

	// The two sides live in the same table but stay separate.
	got, err := db.GetAllTopics(cluster.SideLLM)
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if !reflect.DeepEqual(got, llm) {
		t.Errorf("llm topics = %+v, want %+v", got, llm)
	}

	got, err = db.GetAllTopics(cluster.SidePsych)
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if !reflect.DeepEqual(got, psych) {
		t.Errorf("psych topics = %+v, want %+v", got, psych)
	}
}

// A second rebuild replaces the previous contents entirely.
func TestRebuildTopics_Replaces(t *testing.T) {
	db := testDB(t)

	first := []cluster.Topic{
		{ClusterKey: "agents", Topic: "LLM Agents", PaperIDs: []string{"a1"}},
		{ClusterKey: "reasoning", Topic: "Reasoning", PaperIDs: []string{"a3"}},
	}
	if _, err := db.RebuildTopics(cluster.SideLLM, first); err != nil {
		t.Fatalf("RebuildTopics: %v", err)
	}

	second := []cluster.Topic{
		{ClusterKey: "planning", Topic: "Planning", PaperIDs: []string{"a9"}},
	}
	if _, err := db.RebuildTopics(cluster.SideLLM, second); err != nil {
		t.Fatalf("RebuildTopics: %v", err)
	}

	got, err := db.GetAllTopics(cluster.SideLLM)
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("topics after rebuild = %+v, want %+v", got, second)
	}
}

func TestRebuildSubtopicsAndTheories(t *testing.T) {
	db := testDB(t)

	subs := []cluster.Subtopic{
		{ParentClusterKey: "social", SubClusterKey: "social-0", Topic: "Identity",
			Size: 3, TheoryNames: []string{"Social Identity Theory"}},
		{ParentClusterKey: "social", SubClusterKey: "social-1", Topic: "Norms", Size: 1},
	}
	if n, err := db.RebuildSubtopics(subs); err != nil || n != 2 {
		t.Fatalf("RebuildSubtopics = %d, %v", n, err)
	}
	gotSubs, err := db.GetAllSubtopics()
	if err != nil {
		t.Fatalf("GetAllSubtopics: %v", err)
	}
	if !reflect.DeepEqual(gotSubs, subs) {
		t.Errorf("subtopics = %+v, want %+v", gotSubs, subs)
	}

	theories := []cluster.Theory{
		{ParentClusterKey: "social", Name: "Schema Theory", CitationCount: 10,
			DocumentTitles: []string{"Memory Schemas"}},
	}
	if n, err := db.RebuildTheories(theories); err != nil || n != 1 {
		t.Fatalf("RebuildTheories = %d, %v", n, err)
	}
	gotTheories, err := db.GetAllTheories()
	if err != nil {
		t.Fatalf("GetAllTheories: %v", err)
	}
	if !reflect.DeepEqual(gotTheories, theories) {
		t.Errorf("theories = %+v, want %+v", gotTheories, theories)
	}
}

func TestRebuildPapers(t *testing.T) {
	db := testDB(t)

	llm := []paper.LLMPaper{
		{ID: "a1", ReferencedPaperIDs: []string{"p1", "p2"}, PublicationDate: "2023-01-15"},
		{ID: "a2", ReferencedPaperIDs: []string{"p1"}, IdentifierURL: "https://arxiv.org/abs/2302.01234"},
	}
	if n, err := db.RebuildLLMPapers(llm); err != nil || n != 2 {
		t.Fatalf("RebuildLLMPapers = %d, %v", n, err)
	}
	gotLLM, err := db.GetAllLLMPapers()
	if err != nil {
		t.Fatalf("GetAllLLMPapers: %v", err)
	}
	if !reflect.DeepEqual(gotLLM, llm) {
		t.Errorf("llm papers = %+v, want %+v", gotLLM, llm)
	}

	psych := []paper.PsychPaper{
		{ID: "p1", Title: "Social Identity and Groups", PublicationDate: "1979-01-01"},
		{ID: "p2", Title: "Group Norms"},
	}
	if n, err := db.RebuildPsychPapers(psych); err != nil || n != 2 {
		t.Fatalf("RebuildPsychPapers = %d, %v", n, err)
	}
	gotPsych, err := db.GetAllPsychPapers()
	if err != nil {
		t.Fatalf("GetAllPsychPapers: %v", err)
	}
	if !reflect.DeepEqual(gotPsych, psych) {
		t.Errorf("psych papers = %+v, want %+v", gotPsych, psych)
	}
}
