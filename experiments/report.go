package experiments

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"coveragerl/util"
)

// Report renders the same episode-return data as the plot command into a
// single interactive HTML page.
func Report(logDir, outPath string) error {
	labels, data := loadComboReturns(logDir)
	if len(data) == 0 {
		return fmt.Errorf("no monitor logs found under %s", logDir)
	}

	maxLen := 0
	for _, returns := range data {
		if len(returns) > maxLen {
			maxLen = len(returns)
		}
	}
	episodes := make([]string, maxLen)
	for i := range episodes {
		episodes[i] = strconv.Itoa(i)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Rolling average episode return (window %d)", rollingWindow),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	line.SetXAxis(episodes)
	for i, returns := range data {
		smoothed := util.RollingMean(returns, rollingWindow)
		items := make([]opts.LineData, len(smoothed))
		for j, v := range smoothed {
			items[j] = opts.LineData{Value: v}
		}
		line.AddSeries(labels[i], items)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Mean episode return by combination",
		}),
	)
	bar.SetXAxis(labels)
	items := make([]opts.BarData, len(data))
	for i, returns := range data {
		items[i] = opts.BarData{Value: stat.Mean(returns, nil)}
	}
	bar.AddSeries("mean return", items)

	page := components.NewPage()
	page.AddCharts(line, bar)

	if dir := filepath.Dir(outPath); dir != "." {
		if err := util.EnsureDir(dir); err != nil {
			return err
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", outPath)
	return nil
}

func ReportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render recorded episode returns as an interactive HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Report(logsDir, outPath)
		},
	}
	cmd.PersistentFlags().StringVar(&outPath, "out", "plots/report.html", "Output HTML file")
	return cmd
}
