// Package stats turns snapshots into the label and count series the charts draw.
package stats

import (
	"sort"

	"github.com/bitmark-inc/ncov-charts/schema"
)

type pair struct {
	label string
	count int
}

func split(data []pair) ([]string, []int) {
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].count > data[j].count
	})

	labels := make([]string, len(data))
	counts := make([]int, len(data))
	for i, d := range data {
		labels[i] = d.label
		counts[i] = d.count
	}
	return labels, counts
}

// ProvinceStatus - province short names and confirmed counts, largest first
func ProvinceStatus(provinces []schema.Province) ([]string, []int) {
	data := make([]pair, 0, len(provinces))
	for _, p := range provinces {
		data = append(data, pair{p.ShortName, p.ConfirmedCount})
	}
	return split(data)
}

// CityStatus - city names and confirmed counts of a province, largest first
func CityStatus(province schema.Province) ([]string, []int) {
	data := make([]pair, 0, len(province.Cities))
	for _, c := range province.Cities {
		data = append(data, pair{c.Name, c.ConfirmedCount})
	}
	return split(data)
}

// MinMax - smallest and largest of counts, zeros for an empty slice
func MinMax(counts []int) (int, int) {
	if len(counts) == 0 {
		return 0, 0
	}

	min, max := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return min, max
}
