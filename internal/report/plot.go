package report

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg" // png
)

// ErrNothingToPlot is returned when no run carries a history.
var ErrNothingToPlot = errors.New("report: no residual history to plot")

// floorLog10 stands in for log10(0) so exact solves stay on the chart.
const floorLog10 = -17.0

// Plot size.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PlotHistory draws log10 of each run's residual history against the
// iteration index and saves the chart to path (format from the extension,
// e.g. .png or .svg). Runs without history (direct solves) are skipped.
func PlotHistory(path string, runs []Run) error {
	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "log10 residual"
	p.Legend.Top = true

	var drawn int
	for _, run := range runs {
		if len(run.History) == 0 {
			continue
		}
		line, err := plotter.NewLine(historyXYs(run.History))
		if err != nil {
			return fmt.Errorf("report: %s line: %w", run.Method, err)
		}
		line.Color = plotutil.Color(drawn)
		line.Dashes = plotutil.Dashes(drawn)
		p.Add(line)
		p.Legend.Add(run.Method, line)
		drawn++
	}
	if drawn == 0 {
		return ErrNothingToPlot
	}
	p.Add(plotter.NewGrid())

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}

func historyXYs(h []float64) plotter.XYs {
	pts := make(plotter.XYs, len(h))
	for i, v := range h {
		pts[i].X = float64(i + 1)
		if v > 0 && !math.IsInf(v, 0) {
			pts[i].Y = math.Log10(v)
		} else {
			pts[i].Y = floorLog10
		}
	}
	return pts
}
