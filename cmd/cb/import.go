package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/config"
	"github.com/matsen/citebridge/internal/paper"
	"github.com/matsen/citebridge/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <relation> <file>",
	Short: "Import an upstream relation export",
	Long: `Import one relation from an upstream analysis export into the repository.

The relation argument names the target relation:
  llm-topics, psych-topics, subtopics, theories, llm-papers, psych-papers

The input file may be JSONL (one record per line) or a single JSON array.
Records are validated before anything is written; a single invalid record
aborts the import.

Examples:
  cb import llm-topics exports/llm_clusters.jsonl
  cb import theories exports/theory_pool.json`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

// ImportResult is the response for the import command.
type ImportResult struct {
	Status   string `json:"status"`
	Relation string `json:"relation"`
	Records  int    `json:"records"`
}

func runImport(cmd *cobra.Command, args []string) error {
	relation, inputPath := args[0], args[1]
	repoRoot := mustFindRepository()

	count, err := importRelation(repoRoot, relation, inputPath)
	if err != nil {
		exitWithError(ExitDataError, "importing %s: %v", relation, err)
	}

	if humanOutput {
		fmt.Printf("Imported %d %s records\n", count, relation)
		return nil
	}
	return outputJSON(ImportResult{Status: "imported", Relation: relation, Records: count})
}

// importRelation parses, validates, and writes one relation, returning the
// record count.
func importRelation(repoRoot, relation, inputPath string) (int, error) {
	switch relation {
	case "llm-topics":
		topics, err := readTopicsInput(inputPath)
		if err != nil {
			return 0, err
		}
		return len(topics), storage.WriteAllTopics(config.RelationPath(repoRoot, config.LLMTopicsFile), topics)

	case "psych-topics":
		topics, err := readTopicsInput(inputPath)
		if err != nil {
			return 0, err
		}
		return len(topics), storage.WriteAllTopics(config.RelationPath(repoRoot, config.PsychTopicsFile), topics)

	case "subtopics":
		var subs []cluster.Subtopic
		if err := readRelationInput(inputPath, &subs, func() error {
			read, err := storage.ReadAllSubtopics(inputPath)
			subs = read
			return err
		}); err != nil {
			return 0, err
		}
		if err := validateAll(len(subs), func(i int) error { return subs[i].ValidateForCreate() }); err != nil {
			return 0, err
		}
		return len(subs), storage.WriteAllSubtopics(config.RelationPath(repoRoot, config.SubtopicsFile), subs)

	case "theories":
		var theories []cluster.Theory
		if err := readRelationInput(inputPath, &theories, func() error {
			read, err := storage.ReadAllTheories(inputPath)
			theories = read
			return err
		}); err != nil {
			return 0, err
		}
		if err := validateAll(len(theories), func(i int) error { return theories[i].ValidateForCreate() }); err != nil {
			return 0, err
		}
		return len(theories), storage.WriteAllTheories(config.RelationPath(repoRoot, config.TheoriesFile), theories)

	case "llm-papers":
		var papers []paper.LLMPaper
		if err := readRelationInput(inputPath, &papers, func() error {
			read, err := storage.ReadAllLLMPapers(inputPath)
			papers = read
			return err
		}); err != nil {
			return 0, err
		}
		if err := validateAll(len(papers), func(i int) error { return papers[i].ValidateForCreate() }); err != nil {
			return 0, err
		}
		return len(papers), storage.WriteAllLLMPapers(config.RelationPath(repoRoot, config.LLMPapersFile), papers)

	case "psych-papers":
		var papers []paper.PsychPaper
		if err := readRelationInput(inputPath, &papers, func() error {
			read, err := storage.ReadAllPsychPapers(inputPath)
			papers = read
			return err
		}); err != nil {
			return 0, err
		}
		if err := validateAll(len(papers), func(i int) error { return papers[i].ValidateForCreate() }); err != nil {
			return 0, err
		}
		return len(papers), storage.WriteAllPsychPapers(config.RelationPath(repoRoot, config.PsychPapersFile), papers)

	default:
		return 0, fmt.Errorf("unknown relation %q (valid: llm-topics, psych-topics, subtopics, theories, llm-papers, psych-papers)", relation)
	}
}

// readTopicsInput reads a topic relation from JSONL or a JSON array.
func readTopicsInput(inputPath string) ([]cluster.Topic, error) {
	var topics []cluster.Topic
	if err := readRelationInput(inputPath, &topics, func() error {
		read, err := storage.ReadAllTopics(inputPath)
		topics = read
		return err
	}); err != nil {
		return nil, err
	}
	if err := validateAll(len(topics), func(i int) error { return topics[i].ValidateForCreate() }); err != nil {
		return nil, err
	}
	return topics, nil
}

// readRelationInput fills out from a JSON array file, or falls back to the
// JSONL reader when the file does not start with '['.
func readRelationInput(inputPath string, out interface{}, readJSONL func() error) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("parsing JSON array: %w", err)
		}
		return nil
	}
	return readJSONL()
}

// validateAll runs a per-record validator over n records.
func validateAll(n int, validate func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := validate(i); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}
