package schema

import (
	"fmt"
	"time"
)

const (
	SnapshotCollection = "snapshot"
)

var (
	ErrInvalidDate          = fmt.Errorf("invalid date, expect <month>-<day>")
	ErrDuplicateProvince    = fmt.Errorf("duplicate province short name")
	ErrNegativeConfirmCount = fmt.Errorf("negative confirmed count")
)

// Date - month and day of a snapshot, the dashboard never published a year
type Date struct {
	Month int `json:"month" bson:"month"`
	Day   int `json:"day" bson:"day"`
}

// ParseDate - parse <month>-<day>, e.g. 2-12
func ParseDate(s string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(s, "%d-%d", &d.Month, &d.Day); nil != err {
		return Date{}, ErrInvalidDate
	}

	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return Date{}, ErrInvalidDate
	}

	return d, nil
}

// DateOf - date of t in loc
func DateOf(t time.Time, loc *time.Location) Date {
	_, m, d := t.In(loc).Date()
	return Date{Month: int(m), Day: d}
}

// Key - cache key used in file names, e.g. 212 for Feb 12
func (d Date) Key() string {
	return fmt.Sprintf("%d%d", d.Month, d.Day)
}

// Label - axis label, e.g. 2-01
func (d Date) Label() string {
	return fmt.Sprintf("%d-%02d", d.Month, d.Day)
}

func (d Date) String() string {
	return fmt.Sprintf("%d-%d", d.Month, d.Day)
}

// AddDays - date n days later, computed against year of now
func (d Date) AddDays(n int, year int) Date {
	t := time.Date(year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{Month: int(t.Month()), Day: t.Day()}
}

// Before - d comes before other within the same year
func (d Date) Before(other Date) bool {
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

type City struct {
	Name           string `json:"cityName" bson:"name"`
	ConfirmedCount int    `json:"confirmedCount" bson:"confirmed"`
	SuspectedCount int    `json:"suspectedCount" bson:"suspected"`
	CuredCount     int    `json:"curedCount" bson:"cured"`
	DeadCount      int    `json:"deadCount" bson:"dead"`
	LocationID     int    `json:"locationId,omitempty" bson:"location_id"`
}

type Province struct {
	Name           string `json:"provinceName" bson:"name"`
	ShortName      string `json:"provinceShortName" bson:"short_name"`
	ConfirmedCount int    `json:"confirmedCount" bson:"confirmed"`
	SuspectedCount int    `json:"suspectedCount" bson:"suspected"`
	CuredCount     int    `json:"curedCount" bson:"cured"`
	DeadCount      int    `json:"deadCount" bson:"dead"`
	Comment        string `json:"comment" bson:"comment"`
	LocationID     int    `json:"locationId,omitempty" bson:"location_id"`
	Cities         []City `json:"cities" bson:"cities"`
}

// TotalStatistic - nationwide counts published next to the province list
type TotalStatistic struct {
	ID             int    `json:"id" bson:"id"`
	CreateTime     int64  `json:"createTime" bson:"create_time"`
	ModifyTime     int64  `json:"modifyTime" bson:"modify_time"`
	InfectSource   string `json:"infectSource" bson:"infect_source"`
	PassWay        string `json:"passWay" bson:"pass_way"`
	Virus          string `json:"virus" bson:"virus"`
	Summary        string `json:"summary" bson:"summary"`
	CountRemark    string `json:"countRemark" bson:"count_remark"`
	GeneralRemark  string `json:"generalRemark" bson:"general_remark"`
	Remark1        string `json:"remark1" bson:"remark1"`
	Remark2        string `json:"remark2" bson:"remark2"`
	ConfirmedCount int    `json:"confirmedCount" bson:"confirmed"`
	SuspectedCount int    `json:"suspectedCount" bson:"suspected"`
	CuredCount     int    `json:"curedCount" bson:"cured"`
	DeadCount      int    `json:"deadCount" bson:"dead"`
	SeriousCount   int    `json:"seriousCount" bson:"serious"`
}

// Snapshot - one day of scraped data
type Snapshot struct {
	Key        string         `bson:"key"`
	Date       Date           `bson:"date"`
	FetchID    string         `bson:"fetch_id,omitempty"`
	UpdateTime int64          `bson:"update_time"`
	Provinces  []Province     `bson:"provinces"`
	Total      TotalStatistic `bson:"total"`
}

// Province - find province by long or short name
func (s Snapshot) Province(name string) (Province, bool) {
	return FindProvince(s.Provinces, name)
}

// FindProvince - find province by long or short name
func FindProvince(provinces []Province, name string) (Province, bool) {
	for _, p := range provinces {
		if p.Name == name || p.ShortName == name {
			return p, true
		}
	}
	return Province{}, false
}

// ValidateProvinces - short names must be unique and counts non-negative
func ValidateProvinces(provinces []Province) error {
	seen := make(map[string]struct{}, len(provinces))
	for _, p := range provinces {
		if _, ok := seen[p.ShortName]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProvince, p.ShortName)
		}
		seen[p.ShortName] = struct{}{}

		if p.ConfirmedCount < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeConfirmCount, p.ShortName)
		}
		for _, c := range p.Cities {
			if c.ConfirmedCount < 0 {
				return fmt.Errorf("%w: %s %s", ErrNegativeConfirmCount, p.ShortName, c.Name)
			}
		}
	}
	return nil
}
