package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"coveragerl/rl"
	"coveragerl/util"
)

// loadComboReturns reads the monitor log for each mode combination under
// logDir. Missing or unreadable logs are skipped with a warning; combos that
// never ran should not abort plotting the ones that did.
func loadComboReturns(logDir string) ([]string, [][]float64) {
	labels := make([]string, 0)
	data := make([][]float64, 0)
	for _, cfg := range allCombos() {
		name := cfg.Name()
		monitorPath := filepath.Join(logDir, name, rl.MonitorFile)
		returns, err := rl.LoadReturns(monitorPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println(aurora.Yellow(fmt.Sprintf("Warning: no %s in %s - skipping.", rl.MonitorFile, filepath.Join(logDir, name))))
			} else {
				fmt.Println(aurora.Yellow(fmt.Sprintf("Warning: %v - skipping.", err)))
			}
			continue
		}
		if len(returns) == 0 {
			continue
		}
		labels = append(labels, name)
		data = append(data, returns)
	}
	return labels, data
}

// Plot renders the recorded episode returns of every combination: a box
// plot, a bar chart of means, overlaid histograms and rolling-average
// learning curves, all as PNGs under outDir.
func Plot(logDir, outDir string) error {
	labels, data := loadComboReturns(logDir)
	if len(data) == 0 {
		return fmt.Errorf("no monitor logs found under %s", logDir)
	}
	if err := util.EnsureDir(outDir); err != nil {
		return err
	}

	if err := plotBox(labels, data, filepath.Join(outDir, "returns_box.png")); err != nil {
		return err
	}
	if err := plotMeanBar(labels, data, filepath.Join(outDir, "returns_mean_bar.png")); err != nil {
		return err
	}
	if err := plotHistograms(labels, data, outDir); err != nil {
		return err
	}
	if err := plotRolling(labels, data, filepath.Join(outDir, "returns_rolling.png")); err != nil {
		return err
	}
	fmt.Printf("Plots written to %s\n", outDir)
	return nil
}

func plotBox(labels []string, data [][]float64, savePath string) error {
	p := plot.New()
	p.Title.Text = "Episode return distribution by combination"
	p.Y.Label.Text = "Episode return"

	for i, returns := range data {
		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), plotter.Values(returns))
		if err != nil {
			return err
		}
		p.Add(box)
	}
	p.NominalX(labels...)
	return p.Save(8*vg.Inch, 8*vg.Inch, savePath)
}

func plotMeanBar(labels []string, data [][]float64, savePath string) error {
	p := plot.New()
	p.Title.Text = "Average episode return by combination"
	p.Y.Label.Text = "Mean episode return"

	means := make(plotter.Values, len(data))
	for i, returns := range data {
		means[i] = stat.Mean(returns, nil)
	}
	bars, err := plotter.NewBarChart(means, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)
	return p.Save(8*vg.Inch, 8*vg.Inch, savePath)
}

// plotHistograms writes one return histogram per combination.
func plotHistograms(labels []string, data [][]float64, outDir string) error {
	for i, returns := range data {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("Episode return histogram (%s)", labels[i])
		p.X.Label.Text = "Episode return"
		p.Y.Label.Text = "Count"

		hist, err := plotter.NewHist(plotter.Values(returns), 20)
		if err != nil {
			return err
		}
		hist.FillColor = plotutil.Color(i)
		p.Add(hist)
		if err := p.Save(8*vg.Inch, 8*vg.Inch, filepath.Join(outDir, labels[i]+"_hist.png")); err != nil {
			return err
		}
	}
	return nil
}

func plotRolling(labels []string, data [][]float64, savePath string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rolling average episode return (window %d)", rollingWindow)
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	for i, returns := range data {
		smoothed := util.RollingMean(returns, rollingWindow)
		points := make(plotter.XYs, len(smoothed))
		for j, v := range smoothed {
			points[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(labels[i], line)
	}
	return p.Save(8*vg.Inch, 8*vg.Inch, savePath)
}

func PlotCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot recorded episode returns as PNG figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Plot(logsDir, outDir)
		},
	}
	cmd.PersistentFlags().StringVar(&outDir, "out", "plots", "Directory for the rendered figures")
	return cmd
}
