// Package chart renders forecast temperatures as an HTML line chart.
package chart

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"weather-app/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultFile is the chart file used when none is configured
const DefaultFile = "forecast_chart.html"

// HTMLPlotter writes temperature charts to a fixed HTML file
type HTMLPlotter struct {
	path string
}

// NewHTMLPlotter creates a plotter writing to path
func NewHTMLPlotter(path string) *HTMLPlotter {
	if path == "" {
		path = DefaultFile
	}
	return &HTMLPlotter{path: path}
}

// Plot renders series as a line chart with markers and returns the path of
// the written file. An existing chart is replaced.
func (p *HTMLPlotter) Plot(city string, series models.ForecastSeries) (string, error) {
	if len(series.Timestamps) != len(series.Temperatures) {
		return "", fmt.Errorf("series mismatch: %d labels, %d temperatures",
			len(series.Timestamps), len(series.Temperatures))
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create chart directory: %w", err)
		}
	}

	f, err := os.Create(p.path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := newLineChart(city, series).Render(f); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	log.Printf("Rendered %d-point temperature chart for %q to %s", len(series.Temperatures), city, p.path)
	return p.path, nil
}

func newLineChart(city string, series models.ForecastSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Temperature Forecast",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Temperature Forecast",
			Subtitle: city,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Temperature (°C)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	items := make([]opts.LineData, 0, len(series.Temperatures))
	for _, temp := range series.Temperatures {
		items = append(items, opts.LineData{Value: temp})
	}

	line.SetXAxis(series.Timestamps).
		AddSeries("Temperature", items,
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
				Symbol:     "circle",
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: "blue"}),
		)

	return line
}
