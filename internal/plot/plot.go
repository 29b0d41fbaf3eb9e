// Package plot renders cumulative citation series to image files.
package plot

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matsen/citebridge/internal/engine"
)

// RenderCumulativePNG writes a line plot of one or more cumulative series
// to a PNG file. The format is inferred from the path extension, so .svg
// and .pdf outputs work as well.
func RenderCumulativePNG(series []engine.TopicSeries, title, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Cumulative citations"

	// Months across all series share one axis; map each to its ordinal.
	monthOrd := make(map[string]int)
	var months []string
	for _, s := range series {
		for _, pt := range s.Points {
			if _, ok := monthOrd[pt.Month]; !ok {
				monthOrd[pt.Month] = 0
				months = append(months, pt.Month)
			}
		}
	}
	sort.Strings(months)
	for i, m := range months {
		monthOrd[m] = i
	}

	for _, s := range series {
		xys := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			xys[i].X = float64(monthOrd[pt.Month])
			xys[i].Y = float64(pt.Citations)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building line for %s: %w", s.TopicKey, err)
		}
		p.Add(line)
		if s.TopicLabel != "" {
			p.Legend.Add(s.TopicLabel, line)
		}
	}

	p.NominalX(months...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
