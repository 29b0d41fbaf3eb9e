package dataset

import (
	"context"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/config"
	"github.com/matsen/citebridge/internal/paper"
	"github.com/matsen/citebridge/internal/storage"
)

// FileSource reads relations from the JSONL files under a repository root.
type FileSource struct {
	Root string
}

var _ Source = (*FileSource)(nil)

func (s *FileSource) LLMTopics(ctx context.Context) ([]cluster.Topic, error) {
	return storage.ReadAllTopics(config.RelationPath(s.Root, config.LLMTopicsFile))
}

func (s *FileSource) PsychTopics(ctx context.Context) ([]cluster.Topic, error) {
	return storage.ReadAllTopics(config.RelationPath(s.Root, config.PsychTopicsFile))
}

func (s *FileSource) Subtopics(ctx context.Context) ([]cluster.Subtopic, error) {
	return storage.ReadAllSubtopics(config.RelationPath(s.Root, config.SubtopicsFile))
}

func (s *FileSource) Theories(ctx context.Context) ([]cluster.Theory, error) {
	return storage.ReadAllTheories(config.RelationPath(s.Root, config.TheoriesFile))
}

func (s *FileSource) LLMPapers(ctx context.Context) ([]paper.LLMPaper, error) {
	return storage.ReadAllLLMPapers(config.RelationPath(s.Root, config.LLMPapersFile))
}

func (s *FileSource) PsychPapers(ctx context.Context) ([]paper.PsychPaper, error) {
	return storage.ReadAllPsychPapers(config.RelationPath(s.Root, config.PsychPapersFile))
}

// DBSource reads relations from the SQLite query cache.
type DBSource struct {
	DB *storage.DB
}

var _ Source = (*DBSource)(nil)

func (s *DBSource) LLMTopics(ctx context.Context) ([]cluster.Topic, error) {
	return s.DB.GetAllTopics(cluster.SideLLM)
}

func (s *DBSource) PsychTopics(ctx context.Context) ([]cluster.Topic, error) {
	return s.DB.GetAllTopics(cluster.SidePsych)
}

func (s *DBSource) Subtopics(ctx context.Context) ([]cluster.Subtopic, error) {
	return s.DB.GetAllSubtopics()
}

func (s *DBSource) Theories(ctx context.Context) ([]cluster.Theory, error) {
	return s.DB.GetAllTheories()
}

func (s *DBSource) LLMPapers(ctx context.Context) ([]paper.LLMPaper, error) {
	return s.DB.GetAllLLMPapers()
}

func (s *DBSource) PsychPapers(ctx context.Context) ([]paper.PsychPaper, error) {
	return s.DB.GetAllPsychPapers()
}
