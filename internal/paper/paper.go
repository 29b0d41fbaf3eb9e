// Package paper defines the core domain types for paper metadata.
package paper

import (
	"errors"
	"strings"
)

// LLMPaper represents a machine-learning paper with its reference list.
// References point at psychology paper IDs; the citation-edge relation is
// derived from them rather than stored.
type LLMPaper struct {
	ID                 string   `json:"paper_id"`
	ReferencedPaperIDs []string `json:"referenced_paper_ids,omitempty"`
	PublicationDate    string   `json:"publication_date,omitempty"` // ISO date or prefix, YYYY-MM at minimum
	IdentifierURL      string   `json:"identifier_url,omitempty"`   // e.g. https://arxiv.org/abs/2310.01234
}

// PsychPaper represents a psychology paper. Theories reference psychology
// papers by title, so Title is the join key for that relation.
type PsychPaper struct {
	ID              string `json:"paper_id"`
	Title           string `json:"title"`
	PublicationDate string `json:"publication_date,omitempty"`
}

// Validation errors.
var (
	ErrEmptyPaperID = errors.New("paper_id is required")
	ErrEmptyTitle   = errors.New("title is required")
)

// ValidateForCreate validates an LLM paper for creation.
func (p *LLMPaper) ValidateForCreate() error {
	if p.ID == "" {
		return ErrEmptyPaperID
	}
	return nil
}

// ValidateForCreate validates a psychology paper for creation.
func (p *PsychPaper) ValidateForCreate() error {
	if p.ID == "" {
		return ErrEmptyPaperID
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// NormalizeTitle canonicalizes a document title for join purposes:
// whitespace-trimmed and lower-cased. Titles that differ only in case or
// surrounding whitespace are treated as the same paper.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
