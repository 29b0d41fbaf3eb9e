package main

import (
	"fmt"

	"github.com/matsen/citebridge/internal/engine"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Output the bipartite topic graph",
	Long: `Assemble the bipartite topic graph: one node per topic on each side and
one weighted edge per connected (LLM topic, psychology topic) pair. Edge
weight is the number of citation pairs crossing both topics' paper sets;
unconnected pairs are omitted.`,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	g := engine.BuildGraph(ds)

	if humanOutput {
		for _, n := range g.Nodes {
			outputHuman("%-6s %-24s size=%d\n", n.Side, n.ClusterKey, n.Size)
		}
		fmt.Println()
		for _, e := range g.Edges {
			outputHuman("%s -> %s (%d)\n", e.SourceTopic, e.TargetTopic, e.Weight)
		}
		return nil
	}
	return outputJSON(g)
}
