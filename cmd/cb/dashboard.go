package main

import (
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/viz"
	"github.com/spf13/cobra"
)

var dashboardOutput string
var dashboardLayout string
var dashboardOffline bool

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardOutput, "output", "o", "", "Output file path (default: stdout)")
	dashboardCmd.Flags().StringVar(&dashboardLayout, "layout", "force", "Graph layout algorithm: force, circle, or grid")
	dashboardCmd.Flags().BoolVar(&dashboardOffline, "offline", false, "Inline Cytoscape.js for offline use (requires a build with the bundle embedded)")
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Generate the interactive citation dashboard",
	Long: `Generate a self-contained HTML dashboard with four linked panels:

  - the bipartite topic graph (click a node to select it)
  - cumulative citation series for the selected LLM topic
  - the theory table of the selected psychology topic
  - the selected theory's distribution across LLM topics

Every derived view is precomputed and embedded, so the page needs no
server. Clicking a selected node again clears that selection; selecting a
different psychology topic clears any selected theory.

Examples:
  # Generate HTML to stdout
  cb dashboard > dashboard.html

  # Generate to file
  cb dashboard --output dashboard.html

  # Use circular layout
  cb dashboard --layout circle --output dashboard.html`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	data := viz.BuildDashboard(ds)

	html, err := viz.GenerateHTML(data, viz.HTMLOptions{
		Layout:  dashboardLayout,
		Offline: dashboardOffline,
	})
	if err != nil {
		exitWithError(ExitError, "generating dashboard: %v", err)
	}

	if dashboardOutput == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.WriteFile(dashboardOutput, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing dashboard: %v", err)
	}

	if humanOutput {
		outputHuman("Dashboard written to %s\n", dashboardOutput)
		return nil
	}
	return outputJSON(StatusResponse{Status: "written", Path: dashboardOutput})
}
