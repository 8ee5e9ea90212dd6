package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ncov-charts/schema"
)

// SaveSnapshot - insert or replace the snapshot of a day
func (m mongoDB) SaveSnapshot(ctx context.Context, snapshot schema.Snapshot) error {
	c := m.client.Database(m.database).Collection(schema.SnapshotCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if snapshot.Key == "" {
		snapshot.Key = snapshot.Date.Key()
	}

	result, err := c.ReplaceOne(ctx, dateQuery(snapshot.Date), snapshot, options.Replace().SetUpsert(true))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"key":    snapshot.Key,
			"error":  err,
		}).Error("save snapshot")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"key":      snapshot.Key,
		"fetch_id": snapshot.FetchID,
		"upserted": result.UpsertedCount,
		"modified": result.ModifiedCount,
	}).Info("snapshot saved")
	return nil
}

// Snapshot - stored snapshot of a day
func (m mongoDB) Snapshot(ctx context.Context, date schema.Date) (schema.Snapshot, error) {
	c := m.client.Database(m.database).Collection(schema.SnapshotCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var snapshot schema.Snapshot
	err := c.FindOne(ctx, dateQuery(date)).Decode(&snapshot)
	if nil != err {
		if err == mongo.ErrNoDocuments {
			return schema.Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, date.Key())
		}

		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"key":    date.Key(),
			"error":  err,
		}).Error("find snapshot")
		return schema.Snapshot{}, err
	}

	return snapshot, nil
}

// dateQuery - the key alone is ambiguous, e.g. 1-11 and 11-1
func dateQuery(date schema.Date) bson.M {
	return bson.M{
		"date.month": date.Month,
		"date.day":   date.Day,
	}
}
