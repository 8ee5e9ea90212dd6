package stats

import (
	"fmt"

	"github.com/bitmark-inc/ncov-charts/consts"
	"github.com/bitmark-inc/ncov-charts/schema"
)

var (
	ErrSeriesLengthMismatch = fmt.Errorf("series length mismatch")
)

// Tendency - daily new confirmed cases, nationwide, in the focus province and
// in all other provinces
type Tendency struct {
	Province string
	Dates    []string
	National []int
	Focus    []int
	Others   []int
}

// NewTendency - build a tendency from two parallel series, focus being the
// series of province, others is the difference
func NewTendency(province string, dates []string, national, focus []int) (Tendency, error) {
	if len(dates) != len(national) || len(dates) != len(focus) {
		return Tendency{}, ErrSeriesLengthMismatch
	}

	others := make([]int, len(national))
	for i := range national {
		others[i] = national[i] - focus[i]
	}

	return Tendency{
		Province: province,
		Dates:    dates,
		National: national,
		Focus:    focus,
		Others:   others,
	}, nil
}

// DefaultTendency - the built-in series from 1-22 to 2-11
func DefaultTendency() Tendency {
	t, _ := NewTendency(consts.DefaultFocusProvince, consts.DefaultTendencyDates, consts.DefaultNationalNew, consts.DefaultFocusNew)
	return t
}

// TendencyFromSnapshots - new cases between consecutive snapshots, which must
// be sorted by date. Each point is labelled by the later day. A focus
// province missing from a snapshot counts as zero.
func TendencyFromSnapshots(snapshots []schema.Snapshot, focus string) (Tendency, error) {
	if len(snapshots) < 2 {
		return DefaultTendency(), nil
	}

	var (
		dates    []string
		national []int
		local    []int
	)
	for i := 1; i < len(snapshots); i++ {
		prev, curr := snapshots[i-1], snapshots[i]
		dates = append(dates, curr.Date.Label())
		national = append(national, curr.Total.ConfirmedCount-prev.Total.ConfirmedCount)
		local = append(local, focusCount(curr, focus)-focusCount(prev, focus))
	}

	return NewTendency(focus, dates, national, local)
}

func focusCount(s schema.Snapshot, focus string) int {
	p, ok := s.Province(focus)
	if !ok {
		return 0
	}
	return p.ConfirmedCount
}
