package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/stats"
	"github.com/bitmark-inc/ncov-charts/utils"
)

type size struct {
	width  string
	height string
}

var (
	countryPieSize  = size{"360px", "330px"}
	provincePieSize = size{"350px", "320px"}
)

func pieData(labels []string, counts []int) []opts.PieData {
	data := make([]opts.PieData, len(labels))
	for i := range labels {
		data[i] = opts.PieData{Name: labels[i], Value: counts[i]}
	}
	return data
}

func (r *Renderer) pie(title string, s size, labels []string, counts []int) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   s.width,
			Height:  s.height,
			ChartID: newChartID(),
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	pie.AddSeries(title, pieData(labels, counts),
		charts.WithPieChartOpts(opts.PieChart{Radius: []int{5, 80}}),
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {c}"}),
	)

	r.scope.Counter(metricRendered).Inc(1)
	return pie
}

// PiePage - country pie followed by one pie per province with city data
func (r *Renderer) PiePage(snapshot schema.Snapshot) *components.Page {
	page := components.NewPage()

	labels, counts := stats.ProvinceStatus(snapshot.Provinces)
	title := r.localize(utils.MsgCountryTitle, map[string]interface{}{"Count": snapshot.Total.ConfirmedCount})
	page.AddCharts(r.pie(title, countryPieSize, labels, counts))

	for _, p := range snapshot.Provinces {
		if len(p.Cities) == 0 {
			r.skip(p, "province without city data")
			continue
		}

		labels, counts := stats.CityStatus(p)
		title := r.localize(utils.MsgProvinceTitle, map[string]interface{}{
			"Name":  p.ShortName,
			"Count": p.ConfirmedCount,
		})
		page.AddCharts(r.pie(title, provincePieSize, labels, counts))
	}

	return page
}
