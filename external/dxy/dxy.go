package dxy

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ncov-charts/schema"
)

const (
	logPrefix = "dxy"

	DefaultURL     = "http://3g.dxy.cn/newh5/view/pneumonia"
	defaultTimeout = 30 * time.Second
)

var (
	ErrEmptyResponse = fmt.Errorf("empty response")
)

// Page - one fetch of the dashboard, raw and parsed
type Page struct {
	HTML          []byte
	ProvincesJSON []byte
	StatisticJSON []byte
	Provinces     []schema.Province
	Statistic     schema.TotalStatistic
}

// Source - interface to fetch the dashboard
type Source interface {
	Fetch(ctx context.Context) (*Page, error)
}

type dxy struct {
	url     string
	timeout time.Duration
}

func (d dxy) Fetch(ctx context.Context) (*Page, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	timeout := d.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remain := time.Until(deadline); remain < timeout {
			timeout = remain
		}
	}

	c := colly.NewCollector(colly.AllowURLRevisit())
	c.SetRequestTimeout(timeout)

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
			"size":   len(r.Body),
		}).Debug("dashboard response")
		body = r.Body
	})

	if err := c.Visit(d.url); nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    d.url,
			"error":  err,
		}).Error("get dashboard page")
		return nil, err
	}

	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	return ParseHTML(body)
}

// New - new dashboard source, empty url means the public dashboard
func New(url string, timeout time.Duration) Source {
	u := DefaultURL
	if url != "" {
		u = url
	}

	t := defaultTimeout
	if timeout > 0 {
		t = timeout
	}

	return &dxy{
		url:     u,
		timeout: t,
	}
}
