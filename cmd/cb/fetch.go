package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/matsen/citebridge/internal/config"
	"github.com/matsen/citebridge/internal/dataset"
	"github.com/matsen/citebridge/internal/fetch"
	"github.com/matsen/citebridge/internal/storage"
	"github.com/spf13/cobra"
)

var fetchURL string

func init() {
	// Load .env file if present (for CITEBRIDGE_API_KEY)
	_ = godotenv.Load()

	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "Export service base URL (overrides config)")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download all relations from the export service",
	Long: `Download all six source relations from the upstream export service and
write them to the repository's JSONL files.

The download is all-or-nothing: the six relations are fetched concurrently
and nothing is written unless every fetch succeeds. There is no retry; the
dataset is static, so a failure is reported once.

The service URL comes from --url, then .citebridge/config.json, then the
global config. Set CITEBRIDGE_API_KEY (environment or .env file) for
authenticated access.`,
	RunE: runFetch,
}

// FetchResult is the response for the fetch command.
type FetchResult struct {
	Status      string `json:"status"`
	LLMTopics   int    `json:"llm_topics"`
	PsychTopics int    `json:"psych_topics"`
	Subtopics   int    `json:"subtopics"`
	Theories    int    `json:"theories"`
	LLMPapers   int    `json:"llm_papers"`
	PsychPapers int    `json:"psych_papers"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	url := fetchURL
	if url == "" {
		url = cfg.ExportURL
	}
	if url == "" {
		url = config.GetExportURL()
	}
	if url == "" {
		exitWithError(ExitConfigError, "no export service URL configured (use --url or set export_url in config)")
	}

	opts := []fetch.ClientOption{fetch.WithBaseURL(url)}
	if key := config.GetAPIKey(); key != "" {
		opts = append(opts, fetch.WithAPIKey(key))
	}
	client := fetch.NewClient(opts...)

	// Fan out all six fetches; fail the whole download on the first error.
	ds, err := dataset.Load(context.Background(), client)
	if err != nil {
		exitWithError(ExitFetchError, "fetching relations: %v", err)
	}

	if err := writeRelations(repoRoot, ds); err != nil {
		exitWithError(ExitError, "writing relations: %v", err)
	}

	if humanOutput {
		fmt.Printf("Fetched %d LLM topics, %d psychology topics, %d subtopics, %d theories, %d LLM papers, %d psychology papers\n",
			len(ds.LLMTopics), len(ds.PsychTopics), len(ds.Subtopics), len(ds.Theories), len(ds.LLMPapers), len(ds.PsychPapers))
		return nil
	}
	return outputJSON(FetchResult{
		Status:      "fetched",
		LLMTopics:   len(ds.LLMTopics),
		PsychTopics: len(ds.PsychTopics),
		Subtopics:   len(ds.Subtopics),
		Theories:    len(ds.Theories),
		LLMPapers:   len(ds.LLMPapers),
		PsychPapers: len(ds.PsychPapers),
	})
}

// writeRelations persists a fully loaded dataset to the repository files.
func writeRelations(repoRoot string, ds *dataset.Dataset) error {
	if err := storage.WriteAllTopics(config.RelationPath(repoRoot, config.LLMTopicsFile), ds.LLMTopics); err != nil {
		return err
	}
	if err := storage.WriteAllTopics(config.RelationPath(repoRoot, config.PsychTopicsFile), ds.PsychTopics); err != nil {
		return err
	}
	if err := storage.WriteAllSubtopics(config.RelationPath(repoRoot, config.SubtopicsFile), ds.Subtopics); err != nil {
		return err
	}
	if err := storage.WriteAllTheories(config.RelationPath(repoRoot, config.TheoriesFile), ds.Theories); err != nil {
		return err
	}
	if err := storage.WriteAllLLMPapers(config.RelationPath(repoRoot, config.LLMPapersFile), ds.LLMPapers); err != nil {
		return err
	}
	return storage.WriteAllPsychPapers(config.RelationPath(repoRoot, config.PsychPapersFile), ds.PsychPapers)
}
