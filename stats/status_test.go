package stats

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ncov-charts/schema"
)

var testProvinces = []schema.Province{
	{Name: "广东省", ShortName: "广东", ConfirmedCount: 200},
	{Name: "湖北省", ShortName: "湖北", ConfirmedCount: 3000, Cities: []schema.City{
		{Name: "孝感", ConfirmedCount: 300},
		{Name: "武汉", ConfirmedCount: 2000},
		{Name: "黄冈", ConfirmedCount: 300},
		{Name: "恩施州", ConfirmedCount: 50},
	}},
	{Name: "西藏自治区", ShortName: "西藏", ConfirmedCount: 1},
	{Name: "浙江省", ShortName: "浙江", ConfirmedCount: 200},
}

func TestProvinceStatus(t *testing.T) {
	labels, counts := ProvinceStatus(testProvinces)
	assert.Equal(t, len(labels), len(counts))
	assert.Equal(t, []string{"湖北", "广东", "浙江", "西藏"}, labels)
	assert.Equal(t, []int{3000, 200, 200, 1}, counts)
	assert.True(t, sort.SliceIsSorted(counts, func(i, j int) bool { return counts[i] > counts[j] }))
}

func TestCityStatus(t *testing.T) {
	labels, counts := CityStatus(testProvinces[1])
	assert.Equal(t, []string{"武汉", "孝感", "黄冈", "恩施州"}, labels)
	assert.Equal(t, []int{2000, 300, 300, 50}, counts)
}

func TestCityStatusEmpty(t *testing.T) {
	labels, counts := CityStatus(testProvinces[0])
	assert.Equal(t, 0, len(labels))
	assert.Equal(t, 0, len(counts))
}

func TestStatusDoesNotReorderInput(t *testing.T) {
	ProvinceStatus(testProvinces)
	assert.Equal(t, "广东", testProvinces[0].ShortName)
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]int{5, 1, 9, 3})
	assert.Equal(t, 1, min)
	assert.Equal(t, 9, max)

	min, max = MinMax(nil)
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, max)
}
