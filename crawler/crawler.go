package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/ncov-charts/external/dxy"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/store"
	"github.com/bitmark-inc/ncov-charts/utils"
)

type Cron interface {
	Run(ctx context.Context) error
}

// cacheWriter - where raw scraped data is kept
type cacheWriter interface {
	SaveHTML(date schema.Date, html []byte) error
	SaveProvinces(date schema.Date, raw []byte) error
	SaveStatistic(date schema.Date, raw []byte) error
}

// snapshotPersister - optional database copy of each fetch
type snapshotPersister interface {
	store.SnapshotWriter
	store.ConfirmUpdater
}

type dxyCrawler struct {
	source    dxy.Source
	cache     cacheWriter
	persister snapshotPersister
	scope     tally.Scope
	now       func() time.Time
}

func (c dxyCrawler) Run(ctx context.Context) error {
	fetchID := uuid.New().String()
	date := utils.Today(c.now())

	page, err := c.source.Fetch(ctx)
	if nil != err {
		c.scope.Counter("fetch_errors").Inc(1)
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"fetch_id": fetchID,
			"error":    err,
		}).Error("fetch dashboard")
		return err
	}
	c.scope.Counter("fetched").Inc(1)

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"fetch_id":  fetchID,
		"date":      date.String(),
		"provinces": len(page.Provinces),
		"confirmed": page.Statistic.ConfirmedCount,
	}).Info("dashboard fetched")

	if err := c.cache.SaveHTML(date, page.HTML); nil != err {
		return err
	}
	if err := c.cache.SaveProvinces(date, page.ProvincesJSON); nil != err {
		return err
	}
	if err := c.cache.SaveStatistic(date, page.StatisticJSON); nil != err {
		return err
	}

	if nil == c.persister {
		return nil
	}

	if err := schema.ValidateProvinces(page.Provinces); nil != err {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"fetch_id": fetchID,
			"error":    err,
		}).Error("invalid provinces, skip persisting")
		return err
	}

	snapshot := schema.Snapshot{
		Key:        date.Key(),
		Date:       date,
		FetchID:    fetchID,
		UpdateTime: c.now().UTC().Unix(),
		Provinces:  page.Provinces,
		Total:      page.Statistic,
	}
	if err := c.persister.SaveSnapshot(ctx, snapshot); nil != err {
		return err
	}
	c.persister.UpdateOrInsertConfirm(ctx, snapshot)
	c.scope.Counter("persisted").Inc(1)

	return nil
}

// newCrawler - fetch the dashboard once, persister may be nil
func newCrawler(source dxy.Source, cache cacheWriter, persister snapshotPersister, scope tally.Scope) Cron {
	return &dxyCrawler{
		source:    source,
		cache:     cache,
		persister: persister,
		scope:     scope,
		now:       time.Now,
	}
}
