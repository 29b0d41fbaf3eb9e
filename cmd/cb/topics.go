package main

import (
	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/dataset"
	"github.com/spf13/cobra"
)

var topicsSide string

func init() {
	topicsCmd.Flags().StringVar(&topicsSide, "side", "", "Restrict to one side: llm or psych")
	rootCmd.AddCommand(topicsCmd)
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topic clusters",
	RunE:  runTopics,
}

// TopicSummary is one row of the topics listing.
type TopicSummary struct {
	ClusterKey string       `json:"cluster_key"`
	Topic      string       `json:"topic"`
	Side       cluster.Side `json:"side"`
	Size       int          `json:"size"`
	Papers     int          `json:"papers"`
}

func runTopics(cmd *cobra.Command, args []string) error {
	switch topicsSide {
	case "", "llm", "psych":
	default:
		exitWithError(ExitError, "invalid --side %q: must be llm or psych", topicsSide)
	}

	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	rows := topicSummaries(ds, topicsSide)

	if humanOutput {
		for _, r := range rows {
			outputHuman("%-6s %-24s %-40s %d papers\n", r.Side, r.ClusterKey, truncateString(r.Topic, 40), r.Papers)
		}
		return nil
	}
	return outputJSON(rows)
}

// topicSummaries builds the listing rows, optionally restricted to one side.
func topicSummaries(ds *dataset.Dataset, side string) []TopicSummary {
	var rows []TopicSummary
	if side == "" || side == "llm" {
		for _, t := range ds.LLMTopics {
			rows = append(rows, TopicSummary{ClusterKey: t.ClusterKey, Topic: t.Topic, Side: cluster.SideLLM, Size: t.Size, Papers: len(t.PaperIDs)})
		}
	}
	if side == "" || side == "psych" {
		for _, t := range ds.PsychTopics {
			rows = append(rows, TopicSummary{ClusterKey: t.ClusterKey, Topic: t.Topic, Side: cluster.SidePsych, Size: t.Size, Papers: len(t.PaperIDs)})
		}
	}
	return rows
}
