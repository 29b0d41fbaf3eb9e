// Package cluster defines the core domain types for topic clusters.
package cluster

import "errors"

// Side identifies which domain a topic cluster belongs to.
type Side string

const (
	// SideLLM marks machine-learning research topics (citation sources).
	SideLLM Side = "llm"
	// SidePsych marks psychology topics (citation targets).
	SidePsych Side = "psych"
)

// Topic represents a named grouping of papers from one domain.
type Topic struct {
	ClusterKey string   `json:"cluster_key"`
	Topic      string   `json:"topic"`
	Size       int      `json:"size"`
	PaperIDs   []string `json:"paper_ids"`
}

// Subtopic represents a finer-grained grouping within one psychology topic.
// Theories are referenced by name string, scoped to the parent topic.
type Subtopic struct {
	ParentClusterKey string   `json:"parent_cluster_key"`
	SubClusterKey    string   `json:"sub_cluster_key"`
	Topic            string   `json:"topic"`
	Size             int      `json:"size"`
	TheoryNames      []string `json:"theory_names,omitempty"`
}

// Theory represents a named psychological framework with a precomputed
// citation count and a list of representative document titles.
type Theory struct {
	ParentClusterKey string   `json:"parent_cluster_key"`
	Name             string   `json:"name"`
	CitationCount    int      `json:"citation_count"`
	DocumentTitles   []string `json:"document_titles,omitempty"`
}

// Validation errors.
var (
	ErrEmptyClusterKey = errors.New("cluster_key is required")
	ErrEmptyTopic      = errors.New("topic is required")
	ErrEmptyParentKey  = errors.New("parent_cluster_key is required")
	ErrEmptySubKey     = errors.New("sub_cluster_key is required")
	ErrEmptyName       = errors.New("name is required")
	ErrNegativeCount   = errors.New("citation_count cannot be negative")
)

// ValidateForCreate validates a topic for creation.
func (t *Topic) ValidateForCreate() error {
	if t.ClusterKey == "" {
		return ErrEmptyClusterKey
	}
	if t.Topic == "" {
		return ErrEmptyTopic
	}
	return nil
}

// ValidateForCreate validates a subtopic for creation.
func (s *Subtopic) ValidateForCreate() error {
	if s.ParentClusterKey == "" {
		return ErrEmptyParentKey
	}
	if s.SubClusterKey == "" {
		return ErrEmptySubKey
	}
	if s.Topic == "" {
		return ErrEmptyTopic
	}
	return nil
}

// ValidateForCreate validates a theory for creation.
func (t *Theory) ValidateForCreate() error {
	if t.ParentClusterKey == "" {
		return ErrEmptyParentKey
	}
	if t.Name == "" {
		return ErrEmptyName
	}
	if t.CitationCount < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Key returns the composite identity of a subtopic.
func (s *Subtopic) Key() SubtopicKey {
	return SubtopicKey{ParentClusterKey: s.ParentClusterKey, SubClusterKey: s.SubClusterKey}
}

// SubtopicKey represents the unique identity of a subtopic.
type SubtopicKey struct {
	ParentClusterKey string
	SubClusterKey    string
}

// Index returns the ordinal position of key within the topic slice, used
// downstream for consistent color assignment. Returns -1 if absent.
func Index(topics []Topic, key string) int {
	for i, t := range topics {
		if t.ClusterKey == key {
			return i
		}
	}
	return -1
}
