package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ncov-charts/schema"
)

var (
	ErrSnapshotNotFound = fmt.Errorf("snapshot not found")
	ErrProvinceNotFound = fmt.Errorf("province not found")
)

// SnapshotReader - read one day of data
type SnapshotReader interface {
	Snapshot(ctx context.Context, date schema.Date) (schema.Snapshot, error)
}

// SnapshotWriter - persist one day of data
type SnapshotWriter interface {
	SaveSnapshot(ctx context.Context, snapshot schema.Snapshot) error
}

// Snapshots - snapshots of every day from..to inclusive, days without data are skipped
func Snapshots(ctx context.Context, r SnapshotReader, from, to schema.Date, year int) ([]schema.Snapshot, error) {
	var snapshots []schema.Snapshot
	for d := from; !to.Before(d); {
		s, err := r.Snapshot(ctx, d)
		if nil != err {
			if !errors.Is(err, ErrSnapshotNotFound) {
				return nil, err
			}
			log.WithFields(log.Fields{
				"prefix": "store",
				"date":   d.String(),
			}).Debug("skip day without snapshot")
		} else {
			snapshots = append(snapshots, s)
		}

		// 12-31 wraps to 1-1 which is never after to
		next := d.AddDays(1, year)
		if next.Before(d) {
			break
		}
		d = next
	}
	return snapshots, nil
}
