package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/ncov-charts/schema"
)

type ConfirmUpdater interface {
	// one record per province (empty city) and per city
	UpdateOrInsertConfirm(ctx context.Context, snapshot schema.Snapshot)
}

type ConfirmGetter interface {
	// latest count and difference to the previous stored count
	GetConfirm(ctx context.Context, province, city string) (int, int, error)
}

type ConfirmOperator interface {
	ConfirmUpdater
	ConfirmGetter
}

func (m mongoDB) UpdateOrInsertConfirm(ctx context.Context, snapshot schema.Snapshot) {
	now := time.Now().UTC().Unix()
	for _, p := range snapshot.Provinces {
		m.updateOrInsertConfirm(ctx, p.ShortName, "", p.ConfirmedCount, now)
		for _, city := range p.Cities {
			m.updateOrInsertConfirm(ctx, p.ShortName, city.Name, city.ConfirmedCount, now)
		}
	}
}

// updateOrInsertConfirm - one record, each with its own deadline
func (m mongoDB) updateOrInsertConfirm(ctx context.Context, province, city string, count int, now int64) {
	c := m.client.Database(m.database).Collection(schema.ConfirmCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := provinceCityQuery(province, city)
	var prev schema.Confirm
	err := c.FindOne(ctx, query).Decode(&prev)

	if nil != err && err != mongo.ErrNoDocuments {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"province": province,
			"city":     city,
			"error":    err,
		}).Error("find confirm count")
		return
	}

	if err == mongo.ErrNoDocuments {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"province": province,
			"city":     city,
			"error":    err,
		}).Info("create new record of confirm count")

		latest := schema.Confirm{
			Province:      province,
			City:          city,
			Count:         count,
			UpdateTime:    now,
			DiffYesterday: 0,
		}

		_, err = c.InsertOne(ctx, latest)
		if nil != err {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"error":  err,
			}).Error("insert confirm count")
		}
		return
	}

	diff := count - prev.Count

	// confirm count should be same or increased
	if diff < 0 {
		log.WithFields(log.Fields{
			"prefix":        mongoLogPrefix,
			"province":      province,
			"city":          city,
			"prev count":    prev.Count,
			"current count": count,
		}).Error("expect confirm count to be mono increasing")
		return
	}

	if diff == 0 {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"province": province,
			"city":     city,
			"count":    count,
		}).Debug("same confirm count")
	}

	_, err = c.UpdateOne(ctx, query, countUpdateCommand(count, diff, now))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"province": province,
			"city":     city,
			"count":    count,
			"error":    err,
		}).Error("update confirm count")
	}
}

func provinceCityQuery(province, city string) bson.M {
	return bson.M{
		"province": province,
		"city":     city,
	}
}

func countUpdateCommand(count, diff int, updateTime int64) bson.M {
	return bson.M{
		"$set": bson.M{
			"count":          count,
			"diff_yesterday": diff,
			"update_time":    updateTime,
		},
	}
}

func (m mongoDB) GetConfirm(ctx context.Context, province, city string) (int, int, error) {
	c := m.client.Database(m.database).Collection(schema.ConfirmCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var latest schema.Confirm
	err := c.FindOne(ctx, provinceCityQuery(province, city)).Decode(&latest)
	if nil != err {
		if err == mongo.ErrNoDocuments {
			return 0, 0, nil
		}
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"province": province,
			"city":     city,
			"error":    err,
		}).Error("get confirm count from db")
		return 0, 0, err
	}

	return latest.Count, latest.DiffYesterday, nil
}
