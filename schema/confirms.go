package schema

const (
	ConfirmCollection = "confirm"
)

// Confirm - latest confirmed count of a province, or of a city when City is set
type Confirm struct {
	Province      string `bson:"province"`
	City          string `bson:"city"`
	Count         int    `bson:"count"`
	UpdateTime    int64  `bson:"update_time"`
	DiffYesterday int    `bson:"diff_yesterday"`
}
