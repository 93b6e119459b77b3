package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/smartpave-data/smartpave/internal/db"
)

// RenderCharts writes an HTML page with the network condition trend and the
// maintenance spend breakdown.
func RenderCharts(w io.Writer, trend []db.DateScore, costs []db.RepairCost) error {
	page := components.NewPage()
	page.PageTitle = "Pavement condition report"
	page.AddCharts(conditionTrendChart(trend), repairCostChart(costs))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report page: %w", err)
	}
	return nil
}

// conditionTrendChart plots the network-wide mean condition score per
// reporting period.
func conditionTrendChart(trend []db.DateScore) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Mean condition score by period",
			Subtitle: "100 = perfect pavement",
		}),
	)

	dates := make([]string, len(trend))
	data := make([]opts.LineData, len(trend))
	for i, d := range trend {
		dates[i] = d.Date
		data[i] = opts.LineData{Value: d.Score}
	}

	line.SetXAxis(dates).AddSeries("condition score", data)
	return line
}

// repairCostChart plots total maintenance spend per repair type.
func repairCostChart(costs []db.RepairCost) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Maintenance spend by repair type"}),
	)

	types := make([]string, len(costs))
	data := make([]opts.BarData, len(costs))
	for i, c := range costs {
		types[i] = c.RepairType
		data[i] = opts.BarData{Value: c.TotalCost}
	}

	bar.SetXAxis(types).AddSeries("total cost", data)
	return bar
}
