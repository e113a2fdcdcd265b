package rl

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"coveragerl/util"
)

// ReturnAnalyzer keeps the raw per-episode returns as the dataset.
func ReturnAnalyzer() Analyzer {
	return func(name string, returns []float64) DataSet {
		return returns
	}
}

// LearningCurveComparator plots one rolling-average return curve per
// experiment into a single figure.
func LearningCurveComparator(plotPath string, window int) Comparator {
	return func(names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Episode returns"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = fmt.Sprintf("Return (rolling mean, window %d)", window)

		for i := 0; i < len(names); i++ {
			returns := ds[i].([]float64)
			smoothed := util.RollingMean(returns, window)
			points := make(plotter.XYs, len(smoothed))
			for j, v := range smoothed {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		if dir := filepath.Dir(plotPath); dir != "." {
			os.MkdirAll(dir, os.ModePerm)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, plotPath)
	}
}
