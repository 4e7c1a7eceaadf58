package utils

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotCost renders a cost-vs-iteration line chart to filename. The image
// format follows the file extension (png, svg, pdf, ...).
func PlotCost(filename string, iterations []int, costs []float64) error {
	if len(iterations) != len(costs) {
		return fmt.Errorf("got %d iterations for %d costs", len(iterations), len(costs))
	}

	points := make(plotter.XYs, len(costs))
	for i := range costs {
		points[i].X = float64(iterations[i])
		points[i].Y = costs[i]
	}

	p := plot.New()
	p.Title.Text = "Training Cost"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "cost"

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("building cost line: %w", err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
