package consts

// DefaultTendencyDates - days of the built-in new case series
var DefaultTendencyDates = []string{
	"1-22", "1-23", "1-24", "1-25", "1-26", "1-27", "1-28",
	"1-29", "1-30", "1-31", "2-01", "2-02", "2-04", "2-05",
	"2-06", "2-07", "2-08", "2-09", "2-10", "2-11",
}

// DefaultNationalNew - daily new confirmed cases nationwide
var DefaultNationalNew = []int{
	131, 259, 444, 688, 769, 1771, 1459, 1737, 1982, 2102,
	2590, 2829, 3235, 3887, 3143, 3399, 2656, 3062, 2478, 2015,
}

// DefaultFocusNew - daily new confirmed cases in 湖北
var DefaultFocusNew = []int{
	69, 105, 180, 323, 371, 1291, 840, 1032, 1220, 1347,
	1921, 2103, 2345, 3156, 2447, 2841, 2147, 2618, 2097, 1638,
}

const (
	DefaultFocusProvince = "湖北"
)
