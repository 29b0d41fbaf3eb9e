package fetch

import (
	"context"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
	"github.com/matsen/citebridge/internal/paper"
)

// Client implements dataset.Source, so a full download is just a
// dataset.Load with the fan-out barrier and all-or-nothing semantics that
// implies.
var _ dataset.Source = (*Client)(nil)

func (c *Client) LLMTopics(ctx context.Context) ([]cluster.Topic, error) {
	var topics []cluster.Topic
	if err := c.getRelation(ctx, "llm_topics", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *Client) PsychTopics(ctx context.Context) ([]cluster.Topic, error) {
	var topics []cluster.Topic
	if err := c.getRelation(ctx, "psych_topics", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *Client) Subtopics(ctx context.Context) ([]cluster.Subtopic, error) {
	var subs []cluster.Subtopic
	if err := c.getRelation(ctx, "subtopics", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *Client) Theories(ctx context.Context) ([]cluster.Theory, error) {
	var theories []cluster.Theory
	if err := c.getRelation(ctx, "theories", &theories); err != nil {
		return nil, err
	}
	return theories, nil
}

func (c *Client) LLMPapers(ctx context.Context) ([]paper.LLMPaper, error) {
	var papers []paper.LLMPaper
	if err := c.getRelation(ctx, "llm_papers", &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (c *Client) PsychPapers(ctx context.Context) ([]paper.PsychPaper, error) {
	var papers []paper.PsychPaper
	if err := c.getRelation(ctx, "psych_papers", &papers); err != nil {
		return nil, err
	}
	return papers, nil
}
