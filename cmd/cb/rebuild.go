package main

import (
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/config"
	"github.com/matsen/citebridge/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query layer from source data",
	Long: `Rebuild the SQLite query database from the JSONL relation files.

Use this after pulling changes from git or if the database becomes corrupted.`,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status      string `json:"status"`
	LLMTopics   int    `json:"llm_topics"`
	PsychTopics int    `json:"psych_topics"`
	Subtopics   int    `json:"subtopics"`
	Theories    int    `json:"theories"`
	LLMPapers   int    `json:"llm_papers"`
	PsychPapers int    `json:"psych_papers"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	// Ensure cache directory exists
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	llmTopics, err := storage.ReadAllTopics(config.RelationPath(repoRoot, config.LLMTopicsFile))
	if err != nil {
		exitWithError(ExitDataError, "reading llm topics: %v", err)
	}
	llmCount, err := db.RebuildTopics(cluster.SideLLM, llmTopics)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding llm topics: %v", err)
	}

	psychTopics, err := storage.ReadAllTopics(config.RelationPath(repoRoot, config.PsychTopicsFile))
	if err != nil {
		exitWithError(ExitDataError, "reading psych topics: %v", err)
	}
	psychCount, err := db.RebuildTopics(cluster.SidePsych, psychTopics)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding psych topics: %v", err)
	}

	subs, err := storage.ReadAllSubtopics(config.RelationPath(repoRoot, config.SubtopicsFile))
	if err != nil {
		exitWithError(ExitDataError, "reading subtopics: %v", err)
	}
	subCount, err := db.RebuildSubtopics(subs)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding subtopics: %v", err)
	}

	theories, err := storage.ReadAllTheories(config.RelationPath(repoRoot, config.TheoriesFile))
	if err != nil {
		exitWithError(ExitDataError, "reading theories: %v", err)
	}
	theoryCount, err := db.RebuildTheories(theories)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding theories: %v", err)
	}

	llmPapers, err := storage.ReadAllLLMPapers(config.RelationPath(repoRoot, config.LLMPapersFile))
	if err != nil {
		exitWithError(ExitDataError, "reading llm papers: %v", err)
	}
	llmPaperCount, err := db.RebuildLLMPapers(llmPapers)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding llm papers: %v", err)
	}

	psychPapers, err := storage.ReadAllPsychPapers(config.RelationPath(repoRoot, config.PsychPapersFile))
	if err != nil {
		exitWithError(ExitDataError, "reading psych papers: %v", err)
	}
	psychPaperCount, err := db.RebuildPsychPapers(psychPapers)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding psych papers: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt query database with %d LLM topics, %d psychology topics, %d subtopics, %d theories, %d LLM papers, and %d psychology papers\n",
			llmCount, psychCount, subCount, theoryCount, llmPaperCount, psychPaperCount)
		return nil
	}
	return outputJSON(RebuildResult{
		Status:      "rebuilt",
		LLMTopics:   llmCount,
		PsychTopics: psychCount,
		Subtopics:   subCount,
		Theories:    theoryCount,
		LLMPapers:   llmPaperCount,
		PsychPapers: psychPaperCount,
	})
}
