package consts

// cityMapName - scraped city name to the region name used by the echarts
// china map datasets. Only names the dashboard abbreviates are listed.
var cityMapName = map[string]string{
	// 湖北
	"恩施州":   "恩施土家族苗族自治州",
	"恩施":    "恩施土家族苗族自治州",
	"神农架林区": "神农架林区",
	"神农架":   "神农架林区",
	"仙桃":    "仙桃市",
	"潜江":    "潜江市",
	"天门":    "天门市",

	// 湖南
	"湘西自治州": "湘西土家族苗族自治州",
	"湘西州":   "湘西土家族苗族自治州",

	// 贵州
	"黔东南州": "黔东南苗族侗族自治州",
	"黔南州":  "黔南布依族苗族自治州",
	"黔西南州": "黔西南布依族苗族自治州",

	// 云南
	"大理州":   "大理白族自治州",
	"红河州":   "红河哈尼族彝族自治州",
	"文山州":   "文山壮族苗族自治州",
	"楚雄州":   "楚雄彝族自治州",
	"德宏州":   "德宏傣族景颇族自治州",
	"西双版纳州": "西双版纳傣族自治州",
	"西双版纳":  "西双版纳傣族自治州",
	"迪庆州":   "迪庆藏族自治州",

	// 四川
	"甘孜州": "甘孜藏族自治州",
	"阿坝州": "阿坝藏族羌族自治州",
	"凉山州": "凉山彝族自治州",

	// 吉林
	"延边":  "延边朝鲜族自治州",
	"延边州": "延边朝鲜族自治州",

	// 甘肃
	"临夏":  "临夏回族自治州",
	"临夏州": "临夏回族自治州",
	"甘南":  "甘南藏族自治州",
	"甘南州": "甘南藏族自治州",

	// 青海
	"海北州": "海北藏族自治州",
	"西宁":  "西宁市",

	// 新疆
	"伊犁州":       "伊犁哈萨克自治州",
	"昌吉州":       "昌吉回族自治州",
	"巴州":        "巴音郭楞蒙古自治州",
	"兵团第八师石河子市": "石河子市",
	"第八师石河子":    "石河子市",

	// 黑龙江
	"大兴安岭": "大兴安岭地区",

	// 内蒙古
	"锡林郭勒盟": "锡林郭勒盟",
	"锡林郭勒":  "锡林郭勒盟",
	"兴安盟":   "兴安盟",
	"阿拉善盟":  "阿拉善盟",

	// 海南
	"陵水":  "陵水黎族自治县",
	"琼中":  "琼中黎族苗族自治县",
	"乐东":  "乐东黎族自治县",
	"保亭":  "保亭黎族苗族自治县",
	"昌江":  "昌江黎族自治县",
	"儋州":  "儋州市",
	"万宁":  "万宁市",
	"琼海":  "琼海市",
	"文昌":  "文昌市",
	"东方":  "东方市",
	"澄迈县": "澄迈县",
	"临高县": "临高县",
	"定安县": "定安县",
}

// CityMapName - region name of a scraped city name, false when the name is not
// in the table
func CityMapName(name string) (string, bool) {
	n, ok := cityMapName[name]
	return n, ok
}

// CityMapNames - a copy of the whole table
func CityMapNames() map[string]string {
	m := make(map[string]string, len(cityMapName))
	for k, v := range cityMapName {
		m[k] = v
	}
	return m
}
