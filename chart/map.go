package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ncov-charts/consts"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/stats"
	"github.com/bitmark-inc/ncov-charts/utils"
)

const countryMapType = "china"

var mapSize = size{"350px", "380px"}

func mapData(labels []string, counts []int) []opts.MapData {
	data := make([]opts.MapData, len(labels))
	for i := range labels {
		data[i] = opts.MapData{Name: labels[i], Value: counts[i]}
	}
	return data
}

// visualMapScript - apply the pieces once the chart is initialised, addressed
// by the chart's element id
func visualMapScript(chartID string, pieces Pieces) (string, error) {
	vm, err := pieces.VisualMapJSON()
	if nil != err {
		return "", err
	}
	return fmt.Sprintf("goecharts_%s.setOption({visualMap: %s});", chartID, vm), nil
}

func (r *Renderer) choropleth(title, mapType string, labels []string, counts []int, pieces Pieces) (*charts.Map, error) {
	chartID := newChartID()
	script, err := visualMapScript(chartID, pieces)
	if nil != err {
		return nil, err
	}

	m := charts.NewMap()
	m.RegisterMapType(mapType)
	m.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   mapSize.width,
			Height:  mapSize.height,
			ChartID: chartID,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	m.AddSeries("", mapData(labels, counts),
		charts.WithLabelOpts(opts.Label{Show: true}),
	)
	m.AddJSFuncs(script)

	r.scope.Counter(metricRendered).Inc(1)
	return m, nil
}

// ResolveCities - map region names and counts of a province, largest first.
// Cities that cannot be resolved are dropped together with their counts.
func (r *Renderer) ResolveCities(p schema.Province) ([]string, []int) {
	names, counts := stats.CityStatus(p)

	labels := make([]string, 0, len(names))
	values := make([]int, 0, len(counts))
	for i, name := range names {
		resolved, err := r.resolver.Resolve(name)
		if nil != err {
			r.scope.Counter(metricUnresolved).Inc(1)
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"province": p.ShortName,
				"city":     name,
				"error":    err,
			}).Warn("unresolved city name")
			continue
		}
		labels = append(labels, resolved)
		values = append(values, counts[i])
	}
	return labels, values
}

// MapPage - country map with the default pieces followed by one map per
// province, pieces generated from its city counts
func (r *Renderer) MapPage(snapshot schema.Snapshot) (*components.Page, error) {
	page := components.NewPage()

	labels, counts := stats.ProvinceStatus(snapshot.Provinces)
	title := r.localize(utils.MsgCountryTitle, map[string]interface{}{"Count": snapshot.Total.ConfirmedCount})
	country, err := r.choropleth(title, countryMapType, labels, counts, DefaultPieces())
	if nil != err {
		return nil, err
	}
	page.AddCharts(country)

	for _, p := range snapshot.Provinces {
		if !consts.IsProvinceMap(p.ShortName) {
			r.skip(p, "province without map dataset")
			continue
		}

		labels, counts := r.ResolveCities(p)
		if len(labels) == 0 {
			r.skip(p, "province without resolvable city data")
			continue
		}

		min, max := stats.MinMax(counts)
		title := r.localize(utils.MsgProvinceTitle, map[string]interface{}{
			"Name":  p.ShortName,
			"Count": p.ConfirmedCount,
		})
		m, err := r.choropleth(title, p.ShortName, labels, counts, NewPieces(float64(min), float64(max), r.buckets))
		if nil != err {
			return nil, err
		}
		page.AddCharts(m)
	}

	return page, nil
}
