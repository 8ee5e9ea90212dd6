package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ncov-charts/consts"
	"github.com/bitmark-inc/ncov-charts/schema"
)

func snapshotOf(month, day, total, hubei int) schema.Snapshot {
	return schema.Snapshot{
		Date:      schema.Date{Month: month, Day: day},
		Total:     schema.TotalStatistic{ConfirmedCount: total},
		Provinces: []schema.Province{{Name: "湖北省", ShortName: "湖北", ConfirmedCount: hubei}},
	}
}

func TestTendencyFromSnapshots(t *testing.T) {
	snapshots := []schema.Snapshot{
		snapshotOf(2, 10, 40000, 30000),
		snapshotOf(2, 11, 42000, 31600),
		snapshotOf(2, 12, 44500, 33500),
	}

	tendency, err := TendencyFromSnapshots(snapshots, "湖北")
	assert.NoError(t, err)
	assert.Equal(t, "湖北", tendency.Province)
	assert.Equal(t, []string{"2-11", "2-12"}, tendency.Dates)
	assert.Equal(t, []int{2000, 2500}, tendency.National)
	assert.Equal(t, []int{1600, 1900}, tendency.Focus)
	assert.Equal(t, []int{400, 600}, tendency.Others)
}

func TestTendencyMissingFocusProvince(t *testing.T) {
	snapshots := []schema.Snapshot{
		snapshotOf(2, 10, 100, 50),
		snapshotOf(2, 11, 150, 70),
	}

	tendency, err := TendencyFromSnapshots(snapshots, "广东")
	assert.NoError(t, err)
	assert.Equal(t, "广东", tendency.Province)
	assert.Equal(t, []int{0}, tendency.Focus)
	assert.Equal(t, []int{50}, tendency.Others)
}

func TestTendencyFallsBackToDefault(t *testing.T) {
	tendency, err := TendencyFromSnapshots([]schema.Snapshot{snapshotOf(2, 12, 1, 1)}, "广东")
	assert.NoError(t, err)
	assert.Equal(t, consts.DefaultFocusProvince, tendency.Province)
	assert.Equal(t, consts.DefaultTendencyDates, tendency.Dates)
	assert.Equal(t, 20, len(tendency.Others))
	assert.Equal(t, 131-69, tendency.Others[0])
	assert.Equal(t, 2015-1638, tendency.Others[19])
}

func TestNewTendencyLengthMismatch(t *testing.T) {
	_, err := NewTendency("湖北", []string{"1-22"}, []int{1, 2}, []int{1})
	assert.Equal(t, ErrSeriesLengthMismatch, err)
}
