package main

import (
	"github.com/matsen/citebridge/internal/engine"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(distributionCmd)
}

var distributionCmd = &cobra.Command{
	Use:   "distribution <theory>",
	Short: "Output a theory's citation distribution across LLM topics",
	Long: `Count, per LLM topic, the citation edges targeting papers associated
with the named theory. Every LLM topic appears in the output, including
zero-count topics, sorted by descending count.

The theory is looked up by name across all psychology topics. An unknown
name produces an empty result, not an error.

Example:
  cb distribution "Schema Theory"`,
	Args: cobra.ExactArgs(1),
	RunE: runDistribution,
}

func runDistribution(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	rows := engine.TheoryDistribution(ds, args[0])

	if humanOutput {
		for _, r := range rows {
			outputHuman("%-32s %d\n", r.TopicLabel, r.Count)
		}
		return nil
	}
	return outputJSON(rows)
}
