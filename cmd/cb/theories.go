package main

import (
	"github.com/matsen/citebridge/internal/engine"
	"github.com/spf13/cobra"
)

var theoriesSort string

func init() {
	theoriesCmd.Flags().StringVar(&theoriesSort, "sort", "subtopic", "Row ordering: subtopic (grouped) or citations (flat)")
	rootCmd.AddCommand(theoriesCmd)
}

var theoriesCmd = &cobra.Command{
	Use:   "theories <psych-topic>",
	Short: "Output the theory table of a psychology topic",
	Long: `Join a psychology topic's subtopics against its theory pool and output
the resulting theory table. The three highest-cited theories of the topic
are marked top-three. Unresolved theory references are dropped.

An unknown topic key produces an empty table, not an error.

Examples:
  cb theories social-cognition
  cb theories social-cognition --sort citations`,
	Args: cobra.ExactArgs(1),
	RunE: runTheories,
}

func runTheories(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	rows := engine.TheoryTable(ds, args[0])
	switch theoriesSort {
	case "", "subtopic":
		// default ordering from the join
	case "citations":
		rows = engine.SortRowsByCitations(rows)
	default:
		exitWithError(ExitError, "invalid --sort %q: must be subtopic or citations", theoriesSort)
	}

	if humanOutput {
		for _, r := range rows {
			marker := " "
			if r.TopThree {
				marker = "*"
			}
			outputHuman("%s %-28s %-36s %d\n", marker, r.SubtopicLabel, r.TheoryName, r.CitationCount)
		}
		return nil
	}
	return outputJSON(rows)
}
