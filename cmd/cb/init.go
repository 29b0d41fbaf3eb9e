package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/citebridge/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new citebridge repository",
	Long: `Initialize a new citebridge repository in the current directory.

Creates:
  .citebridge/
  ├── llm_topics.jsonl     # Empty relation files
  ├── psych_topics.jsonl
  ├── subtopics.jsonl
  ├── theories.jsonl
  ├── llm_papers.jsonl
  ├── psych_papers.jsonl
  ├── config.json          # Default config
  └── cache/               # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	// Check if already initialized
	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a citebridge repository")
	}

	// Create directory structure
	cbDir := config.CitebridgePath(root)
	if err := os.MkdirAll(cbDir, 0755); err != nil {
		exitWithError(ExitError, "creating .citebridge directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	// Create empty relation files
	for _, file := range config.RelationFiles {
		f, err := os.OpenFile(config.RelationPath(root, file), os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			exitWithError(ExitError, "creating %s: %v", file, err)
		}
		f.Close()
	}

	// Write default config
	cfg := &config.Config{}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	// Gitignore the cache
	gitignore := filepath.Join(cbDir, ".gitignore")
	if err := os.WriteFile(gitignore, []byte("cache/\n"), 0644); err != nil {
		exitWithError(ExitError, "writing .gitignore: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized citebridge repository in %s\n", cbDir)
		return nil
	}
	return outputJSON(StatusResponse{Status: "initialized", Path: cbDir})
}
