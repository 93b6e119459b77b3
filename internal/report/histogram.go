package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveScoreHistogram writes a PNG histogram of condition scores to path.
func SaveScoreHistogram(scores []float64, path string) error {
	if len(scores) == 0 {
		return fmt.Errorf("no condition scores to plot")
	}

	p := plot.New()
	p.Title.Text = "Condition score distribution"
	p.X.Label.Text = "condition score"
	p.Y.Label.Text = "observations"
	p.X.Min = 0
	p.X.Max = 100

	values := make(plotter.Values, len(scores))
	copy(values, scores)

	hist, err := plotter.NewHist(values, 20)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}
	return nil
}
