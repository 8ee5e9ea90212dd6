package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ncov-charts/consts"
)

func TestCityMapName(t *testing.T) {
	mapping := map[string]string{
		"恩施州":   "恩施土家族苗族自治州",
		"神农架林区": "神农架林区",
		"湘西自治州": "湘西土家族苗族自治州",
		"巴州":    "巴音郭楞蒙古自治州",
		"大兴安岭":  "大兴安岭地区",
	}

	for key, value := range mapping {
		actual, ok := consts.CityMapName(key)
		assert.True(t, ok, key)
		assert.Equal(t, value, actual, "wrong region name")
	}

	_, ok := consts.CityMapName("武汉")
	assert.False(t, ok)
}

func TestCityMapNamesIsCopy(t *testing.T) {
	m := consts.CityMapNames()
	m["恩施州"] = "changed"

	actual, _ := consts.CityMapName("恩施州")
	assert.Equal(t, "恩施土家族苗族自治州", actual)
}
