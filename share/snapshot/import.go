package snapshot

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/store"
)

const logPrefix = "import"

// ImportCache - copy every cached day from..to into the writer, returns the
// number of days imported
func ImportCache(ctx context.Context, r store.SnapshotReader, w store.SnapshotWriter, from, to schema.Date, year int) (int, error) {
	snapshots, err := store.Snapshots(ctx, r, from, to, year)
	if nil != err {
		return 0, err
	}

	imported := 0
	for _, s := range snapshots {
		if err := w.SaveSnapshot(ctx, s); nil != err {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"date":   s.Date.String(),
				"error":  err,
			}).Error("import snapshot")
			return imported, err
		}
		imported++
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"from":     from.String(),
		"to":       to.String(),
		"imported": imported,
	}).Info("cache imported")
	return imported, nil
}
