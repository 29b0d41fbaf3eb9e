package main

import (
	"fmt"

	"github.com/matsen/citebridge/internal/engine"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report data-quality gaps in the loaded relations",
	Long: `Report every join the aggregation views silently drop: topic members
with no paper-metadata record, subtopic theory references that match no
theory pool entry, and theory document titles that match no psychology
paper.

The dashboard views drop these silently; check surfaces them so the gaps
can be fixed in the upstream export.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	report := engine.CheckDataQuality(ds)

	if humanOutput {
		if report.Clean() {
			outputHuman("All joins resolve cleanly\n")
			return nil
		}
		for _, id := range report.UnknownLLMPaperIDs {
			outputHuman("unknown LLM paper id: %s\n", id)
		}
		for _, id := range report.UnknownPsychPaperIDs {
			outputHuman("unknown psychology paper id: %s\n", id)
		}
		for _, name := range report.UnresolvedTheoryRefs {
			outputHuman("unresolved theory reference: %s\n", name)
		}
		for _, title := range report.OrphanDocumentTitles {
			outputHuman("orphan document title: %s\n", truncateString(title, 70))
		}
		fmt.Printf("%d unknown LLM papers, %d unknown psychology papers, %d unresolved theories, %d orphan titles\n",
			len(report.UnknownLLMPaperIDs), len(report.UnknownPsychPaperIDs),
			len(report.UnresolvedTheoryRefs), len(report.OrphanDocumentTitles))
		return nil
	}
	return outputJSON(report)
}
