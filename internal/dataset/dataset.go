// Package dataset loads the six source relations and holds them in memory
// for aggregation. Relations are immutable after load; every derived view
// is computed fresh from this snapshot.
package dataset

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/paper"
)

// Source provides read-only access to the six relations. Implementations
// exist for the JSONL files and the SQLite cache; the aggregation engine
// never touches a Source directly, only a loaded Dataset.
type Source interface {
	LLMTopics(ctx context.Context) ([]cluster.Topic, error)
	PsychTopics(ctx context.Context) ([]cluster.Topic, error)
	Subtopics(ctx context.Context) ([]cluster.Subtopic, error)
	Theories(ctx context.Context) ([]cluster.Theory, error)
	LLMPapers(ctx context.Context) ([]paper.LLMPaper, error)
	PsychPapers(ctx context.Context) ([]paper.PsychPaper, error)
}

// Dataset is the loaded, immutable snapshot of all six relations, in
// declaration order, plus lookup maps derived once at load time.
type Dataset struct {
	LLMTopics   []cluster.Topic
	PsychTopics []cluster.Topic
	Subtopics   []cluster.Subtopic
	Theories    []cluster.Theory
	LLMPapers   []paper.LLMPaper
	PsychPapers []paper.PsychPaper

	llmTopicByKey   map[string]int // index into LLMTopics
	psychTopicByKey map[string]int // index into PsychTopics
	llmPaperByID    map[string]int // index into LLMPapers
	psychPaperByID  map[string]int // index into PsychPapers
	psychIDByTitle  map[string]string
}

// Load fetches all six relations from src concurrently and joins before
// returning. The load is all-or-nothing: any failure aborts the whole load
// with no retry, and no partial dataset is ever returned.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	var ds Dataset

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.LLMTopics, err = src.LLMTopics(ctx)
		return err
	})
	g.Go(func() (err error) {
		ds.PsychTopics, err = src.PsychTopics(ctx)
		return err
	})
	g.Go(func() (err error) {
		ds.Subtopics, err = src.Subtopics(ctx)
		return err
	})
	g.Go(func() (err error) {
		ds.Theories, err = src.Theories(ctx)
		return err
	})
	g.Go(func() (err error) {
		ds.LLMPapers, err = src.LLMPapers(ctx)
		return err
	})
	g.Go(func() (err error) {
		ds.PsychPapers, err = src.PsychPapers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds.buildIndexes()
	return &ds, nil
}

// New constructs a dataset directly from already-loaded relations.
// Useful for tests and for callers that fetch relations themselves.
func New(llmTopics, psychTopics []cluster.Topic, subs []cluster.Subtopic, theories []cluster.Theory, llmPapers []paper.LLMPaper, psychPapers []paper.PsychPaper) *Dataset {
	ds := &Dataset{
		LLMTopics:   llmTopics,
		PsychTopics: psychTopics,
		Subtopics:   subs,
		Theories:    theories,
		LLMPapers:   llmPapers,
		PsychPapers: psychPapers,
	}
	ds.buildIndexes()
	return ds
}

func (ds *Dataset) buildIndexes() {
	ds.llmTopicByKey = make(map[string]int, len(ds.LLMTopics))
	for i, t := range ds.LLMTopics {
		ds.llmTopicByKey[t.ClusterKey] = i
	}
	ds.psychTopicByKey = make(map[string]int, len(ds.PsychTopics))
	for i, t := range ds.PsychTopics {
		ds.psychTopicByKey[t.ClusterKey] = i
	}
	ds.llmPaperByID = make(map[string]int, len(ds.LLMPapers))
	for i, p := range ds.LLMPapers {
		ds.llmPaperByID[p.ID] = i
	}
	ds.psychPaperByID = make(map[string]int, len(ds.PsychPapers))
	ds.psychIDByTitle = make(map[string]string, len(ds.PsychPapers))
	for i, p := range ds.PsychPapers {
		ds.psychPaperByID[p.ID] = i
		ds.psychIDByTitle[paper.NormalizeTitle(p.Title)] = p.ID
	}
}

// LLMTopic looks up an LLM topic by cluster key.
func (ds *Dataset) LLMTopic(key string) (cluster.Topic, bool) {
	i, ok := ds.llmTopicByKey[key]
	if !ok {
		return cluster.Topic{}, false
	}
	return ds.LLMTopics[i], true
}

// PsychTopic looks up a psychology topic by cluster key.
func (ds *Dataset) PsychTopic(key string) (cluster.Topic, bool) {
	i, ok := ds.psychTopicByKey[key]
	if !ok {
		return cluster.Topic{}, false
	}
	return ds.PsychTopics[i], true
}

// LLMPaper looks up an LLM paper by ID.
func (ds *Dataset) LLMPaper(id string) (paper.LLMPaper, bool) {
	i, ok := ds.llmPaperByID[id]
	if !ok {
		return paper.LLMPaper{}, false
	}
	return ds.LLMPapers[i], true
}

// HasPsychPaper reports whether a psychology paper with the given ID exists.
func (ds *Dataset) HasPsychPaper(id string) bool {
	_, ok := ds.psychPaperByID[id]
	return ok
}

// PsychPaperIDByTitle resolves a document title to a psychology paper ID
// using the normalized (case-insensitive, whitespace-trimmed) title join.
func (ds *Dataset) PsychPaperIDByTitle(title string) (string, bool) {
	id, ok := ds.psychIDByTitle[paper.NormalizeTitle(title)]
	return id, ok
}

// SubtopicsOf returns the subtopics of one psychology topic in declaration order.
func (ds *Dataset) SubtopicsOf(parentKey string) []cluster.Subtopic {
	var subs []cluster.Subtopic
	for _, s := range ds.Subtopics {
		if s.ParentClusterKey == parentKey {
			subs = append(subs, s)
		}
	}
	return subs
}

// TheoriesOf returns the theory pool of one psychology topic in declaration order.
func (ds *Dataset) TheoriesOf(parentKey string) []cluster.Theory {
	var theories []cluster.Theory
	for _, th := range ds.Theories {
		if th.ParentClusterKey == parentKey {
			theories = append(theories, th)
		}
	}
	return theories
}
