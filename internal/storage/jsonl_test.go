package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/paper"
)

func TestTopicsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llm_topics.jsonl")

	topics := []cluster.Topic{
		{ClusterKey: "agents", Topic: "LLM Agents", Size: 2, PaperIDs: []string{"a1", "a2"}},
		{ClusterKey: "reasoning", Topic: "Reasoning", Size: 1, PaperIDs: []string{"a3"}},
	}

	if err := WriteAllTopics(path, topics); err != nil {
		t.Fatalf("WriteAllTopics: %v", err)
	}

	got, err := ReadAllTopics(path)
	if err != nil {
		t.Fatalf("ReadAllTopics: %v", err)
	}
	if !reflect.DeepEqual(got, topics) {
		t.Errorf("got %+v, want %+v", got, topics)
	}
}

func TestReadAllTopics_MissingFile(t *testing.T) {
	got, err := ReadAllTopics(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ReadAllTopics: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestReadAllTopics_InvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.jsonl")
	content := `{"cluster_key":"agents","topic":"LLM Agents"}
{"cluster_key":"","topic":"No Key"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadAllTopics(path)
	if !errors.Is(err, cluster.ErrEmptyClusterKey) {
		t.Errorf("got err %v, want %v", err, cluster.ErrEmptyClusterKey)
	}
}

func TestReadAllTopics_SkipsEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.jsonl")
	content := `{"cluster_key":"agents","topic":"LLM Agents"}

{"cluster_key":"reasoning","topic":"Reasoning"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadAllTopics(path)
	if err != nil {
		t.Fatalf("ReadAllTopics: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d topics, want 2", len(got))
	}
}

func TestSubtopicsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subtopics.jsonl")

	subs := []cluster.Subtopic{
		{ParentClusterKey: "social", SubClusterKey: "social-0", Topic: "Identity",
			Size: 3, TheoryNames: []string{"Social Identity Theory"}},
	}

	if err := WriteAllSubtopics(path, subs); err != nil {
		t.Fatalf("WriteAllSubtopics: %v", err)
	}

	got, err := ReadAllSubtopics(path)
	if err != nil {
		t.Fatalf("ReadAllSubtopics: %v", err)
	}
	if !reflect.DeepEqual(got, subs) {
		t.Errorf("got %+v, want %+v", got, subs)
	}
}

func TestTheoriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theories.jsonl")

	theories := []cluster.Theory{
		{ParentClusterKey: "social", Name: "Schema Theory", CitationCount: 10,
			DocumentTitles: []string{"Memory Schemas"}},
		{ParentClusterKey: "social", Name: "Frame Theory", CitationCount: 1},
	}

	if err := WriteAllTheories(path, theories); err != nil {
		t.Fatalf("WriteAllTheories: %v", err)
	}

	got, err := ReadAllTheories(path)
	if err != nil {
		t.Fatalf("ReadAllTheories: %v", err)
	}
	if !reflect.DeepEqual(got, theories) {
		t.Errorf("got %+v, want %+v", got, theories)
	}
}

func TestLLMPapersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llm_papers.jsonl")

	papers := []paper.LLMPaper{
		{ID: "a1", ReferencedPaperIDs: []string{"p1", "p2"}, PublicationDate: "2023-01-15"},
		{ID: "a2", ReferencedPaperIDs: []string{"p1"}, IdentifierURL: "https://arxiv.org/abs/2302.01234"},
	}

	if err := WriteAllLLMPapers(path, papers); err != nil {
		t.Fatalf("WriteAllLLMPapers: %v", err)
	}

	got, err := ReadAllLLMPapers(path)
	if err != nil {
		t.Fatalf("ReadAllLLMPapers: %v", err)
	}
	if !reflect.DeepEqual(got, papers) {
		t.Errorf("got %+v, want %+v", got, papers)
	}
}

func TestAppendPsychPaper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psych_papers.jsonl")

	initial := []paper.PsychPaper{
		{ID: "p1", Title: "Social Identity and Groups"},
	}
	if err := WriteAllPsychPapers(path, initial); err != nil {
		t.Fatalf("WriteAllPsychPapers: %v", err)
	}

	added := paper.PsychPaper{ID: "p2", Title: "Group Norms", PublicationDate: "1991-04-01"}
	if err := AppendPsychPaper(path, added); err != nil {
		t.Fatalf("AppendPsychPaper: %v", err)
	}

	got, err := ReadAllPsychPapers(path)
	if err != nil {
		t.Fatalf("ReadAllPsychPapers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d papers, want 2", len(got))
	}
	if got[1] != added {
		t.Errorf("appended paper = %+v, want %+v", got[1], added)
	}
}
