package engine

import (
	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
	"github.com/matsen/citebridge/internal/paper"
)

// testDataset builds a small snapshot shared by the view tests: two LLM
// topics citing two psychology topics, with subtopics and a theory pool
// under the "social" topic.
func testDataset() *dataset.Dataset {
	llmTopics := []cluster.Topic{
		{ClusterKey: "agents", Topic: "LLM Agents", Size: 2, PaperIDs: []string{"a1", "a2"}},
		{ClusterKey: "reasoning", Topic: "Reasoning", Size: 1, PaperIDs: []string{"a3"}},
	}
	psychTopics := []cluster.Topic{
		{ClusterKey: "social", Topic: "Social Psychology", Size: 2, PaperIDs: []string{"p1", "p2"}},
		{ClusterKey: "cognition", Topic: "Cognition", Size: 1, PaperIDs: []string{"p3"}},
	}
	subs := []cluster.Subtopic{
		{ParentClusterKey: "social", SubClusterKey: "social-0", Topic: "Identity processes",
			TheoryNames: []string{"Social Identity Theory", "Mental Schema Theories", "Ghost Theory"}},
		{ParentClusterKey: "social", SubClusterKey: "social-1", Topic: "Norms",
			TheoryNames: []string{"Norm Theory"}},
	}
	theories := []cluster.Theory{
		{ParentClusterKey: "social", Name: "Social Identity Theory", CitationCount: 10,
			DocumentTitles: []string{"social identity and groups"}},
		{ParentClusterKey: "social", Name: "Schema Theory", CitationCount: 10,
			DocumentTitles: []string{"Memory Schemas"}},
		{ParentClusterKey: "social", Name: "Norm Theory", CitationCount: 5,
			DocumentTitles: []string{"Group Norms", "Title With No Paper"}},
		{ParentClusterKey: "social", Name: "Frame Theory", CitationCount: 1},
	}
	llmPapers := []paper.LLMPaper{
		{ID: "a1", ReferencedPaperIDs: []string{"p1", "p3", "outside"}, PublicationDate: "2023-01-15"},
		{ID: "a2", ReferencedPaperIDs: []string{"p1", "p1", "p2"},
			IdentifierURL: "https://arxiv.org/abs/2302.01234"},
		{ID: "a3", ReferencedPaperIDs: []string{"p3"}, PublicationDate: "2023-03-01"},
	}
	psychPapers := []paper.PsychPaper{
		{ID: "p1", Title: "Social Identity and Groups"},
		{ID: "p2", Title: "Group Norms"},
		{ID: "p3", Title: "Memory Schemas"},
	}
	return dataset.New(llmTopics, psychTopics, subs, theories, llmPapers, psychPapers)
}
