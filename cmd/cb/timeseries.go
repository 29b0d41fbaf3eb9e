package main

import (
	"github.com/matsen/citebridge/internal/engine"
	"github.com/matsen/citebridge/internal/plot"
	"github.com/spf13/cobra"
)

var (
	timeseriesTopic   string
	timeseriesByPsych bool
	timeseriesPlot    string
)

func init() {
	timeseriesCmd.Flags().StringVar(&timeseriesTopic, "topic", "", "Restrict to one LLM topic (default: all topics)")
	timeseriesCmd.Flags().BoolVar(&timeseriesByPsych, "by-psych", false, "Split the series per cited psychology topic (requires --topic)")
	timeseriesCmd.Flags().StringVar(&timeseriesPlot, "plot", "", "Also render the series to an image file (.png, .svg, .pdf)")
	rootCmd.AddCommand(timeseriesCmd)
}

var timeseriesCmd = &cobra.Command{
	Use:   "timeseries",
	Short: "Output the cumulative citation time series",
	Long: `Output the cumulative citation-volume series, one point per month with
at least one paper. Months resolve from each paper's publication date, or
from an arXiv-style identifier code when the date is missing; papers with
neither are excluded.

Examples:
  # All topics combined
  cb timeseries

  # One topic
  cb timeseries --topic agents

  # One topic, split per cited psychology topic
  cb timeseries --topic agents --by-psych

  # Render to PNG
  cb timeseries --topic agents --plot series.png`,
	RunE: runTimeseries,
}

func runTimeseries(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	ds := mustLoadDataset(repoRoot)

	if timeseriesByPsych {
		if timeseriesTopic == "" {
			exitWithError(ExitError, "--by-psych requires --topic")
		}
		series := engine.TopicSeriesByPsych(ds, timeseriesTopic)
		if timeseriesPlot != "" {
			if err := plot.RenderCumulativePNG(series, "Citations from "+timeseriesTopic, timeseriesPlot); err != nil {
				exitWithError(ExitError, "rendering plot: %v", err)
			}
		}
		if humanOutput {
			printTopicSeries(series)
			return nil
		}
		return outputJSON(series)
	}

	points := engine.CumulativeSeries(ds, timeseriesTopic)
	if timeseriesPlot != "" {
		title := "Cumulative citations"
		if timeseriesTopic != "" {
			title += ": " + timeseriesTopic
		}
		single := []engine.TopicSeries{{TopicKey: timeseriesTopic, Points: points}}
		if err := plot.RenderCumulativePNG(single, title, timeseriesPlot); err != nil {
			exitWithError(ExitError, "rendering plot: %v", err)
		}
	}
	if humanOutput {
		for _, p := range points {
			outputHuman("%s  %d\n", p.Month, p.Citations)
		}
		return nil
	}
	return outputJSON(points)
}

func printTopicSeries(series []engine.TopicSeries) {
	for _, s := range series {
		outputHuman("%s (%s)\n", s.TopicLabel, s.TopicKey)
		for _, p := range s.Points {
			outputHuman("  %s  %d\n", p.Month, p.Citations)
		}
	}
}
