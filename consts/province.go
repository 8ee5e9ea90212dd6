package consts

// ProvinceShortNames - short names as published by the dashboard, which are
// also the echarts map type names of each province
var ProvinceShortNames = []string{
	"湖北", "广东", "浙江", "河南", "湖南", "安徽", "江西", "江苏",
	"重庆", "山东", "四川", "黑龙江", "北京", "上海", "福建", "河北",
	"陕西", "广西", "海南", "云南", "贵州", "山西", "辽宁", "天津",
	"甘肃", "吉林", "内蒙古", "宁夏", "新疆", "香港", "青海", "台湾",
	"澳门", "西藏",
}

// IsProvinceMap - whether name has a province map dataset
func IsProvinceMap(name string) bool {
	for _, n := range ProvinceShortNames {
		if n == name {
			return true
		}
	}
	return false
}
