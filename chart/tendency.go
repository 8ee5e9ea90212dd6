package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bitmark-inc/ncov-charts/stats"
	"github.com/bitmark-inc/ncov-charts/utils"
)

const (
	nationalColor = "#B44038"
	focusColor    = "#4E87ED"
	othersColor   = "#F1A846"

	tendencyMin = 100
	tendencyMax = 5000
)

func lineData(values []int) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func lineSeriesOpts(color string, width float32, label bool) []charts.SeriesOpts {
	series := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{Smooth: true}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: width}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color, BorderColor: color}),
	}
	if label {
		series = append(series, charts.WithLabelOpts(opts.Label{Show: true, Position: "bottom"}))
	}
	return series
}

// Tendency - daily new cases on a log scale
func (r *Renderer) Tendency(t stats.Tendency) *charts.Line {
	province := t.Province
	if province == "" {
		province = r.focus
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "1000px",
			Height:  "500px",
			ChartID: newChartID(),
		}),
		charts.WithTitleOpts(opts.Title{Title: ""}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "y",
			Type:      "log",
			Min:       tendencyMin,
			Max:       tendencyMax,
			Scale:     true,
			SplitLine: &opts.SplitLine{Show: true},
		}),
	)

	line.SetXAxis(t.Dates).
		AddSeries(r.localize(utils.MsgNationalNew, nil), lineData(t.National), lineSeriesOpts(nationalColor, 4, false)...).
		AddSeries(r.localize(utils.MsgFocusNew, map[string]interface{}{"Province": province}), lineData(t.Focus), lineSeriesOpts(focusColor, 2, true)...).
		AddSeries(r.localize(utils.MsgOthersNew, nil), lineData(t.Others), lineSeriesOpts(othersColor, 2, true)...)

	r.scope.Counter(metricRendered).Inc(1)
	return line
}

// TendencyPage - the tendency chart alone on a page
func (r *Renderer) TendencyPage(t stats.Tendency) *components.Page {
	page := components.NewPage()
	page.AddCharts(r.Tendency(t))
	return page
}
