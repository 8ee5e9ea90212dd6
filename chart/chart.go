// Package chart renders snapshots into standalone echarts html pages.
package chart

import (
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/google/uuid"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/ncov-charts/geo"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/stats"
	"github.com/bitmark-inc/ncov-charts/utils"
)

const (
	logPrefix = "chart"

	TendencyFile = "新增病例趋势图.html"
	PieFile      = "省份信息.html"
	MapFile      = "省份地图.html"

	metricRendered   = "rendered_charts"
	metricSkipped    = "skipped_provinces"
	metricUnresolved = "unresolved_names"
)

// Config - output and presentation settings
type Config struct {
	Dir     string
	Buckets int
	Focus   string
	Lang    string
}

// Selection - which pages to render
type Selection struct {
	Tendency bool
	Pie      bool
	Map      bool
}

type Renderer struct {
	dir       string
	buckets   int
	focus     string
	resolver  geo.NameResolver
	localizer *i18n.Localizer
	scope     tally.Scope
}

func New(cfg Config, resolver geo.NameResolver, scope tally.Scope) *Renderer {
	if nil == scope {
		scope = tally.NoopScope
	}

	buckets := cfg.Buckets
	if buckets <= 0 {
		buckets = DefaultRanges
	}

	return &Renderer{
		dir:       cfg.Dir,
		buckets:   buckets,
		focus:     cfg.Focus,
		resolver:  resolver,
		localizer: utils.NewLocalizer(cfg.Lang),
		scope:     scope,
	}
}

// OutputDir - directory the pages of a snapshot are written to
func (r *Renderer) OutputDir(date schema.Date) string {
	return filepath.Join(r.dir, date.Key())
}

// Render - write the selected pages of a snapshot
func (r *Renderer) Render(snapshot schema.Snapshot, tendency stats.Tendency, sel Selection) error {
	dir := r.OutputDir(snapshot.Date)

	if sel.Tendency {
		if err := r.write(filepath.Join(dir, TendencyFile), r.TendencyPage(tendency)); nil != err {
			return err
		}
	}

	if sel.Pie {
		if err := r.write(filepath.Join(dir, PieFile), r.PiePage(snapshot)); nil != err {
			return err
		}
	}

	if sel.Map {
		page, err := r.MapPage(snapshot)
		if nil != err {
			return err
		}
		if err := r.write(filepath.Join(dir, MapFile), page); nil != err {
			return err
		}
	}

	return nil
}

func (r *Renderer) write(p string, page *components.Page) error {
	fw, err := utils.NewFileWriter(p)
	if nil != err {
		return err
	}

	if err := page.Render(fw); nil != err {
		fw.Discard()
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"file":   p,
			"error":  err,
		}).Error("render page")
		return err
	}

	if err := fw.Close(); nil != err {
		return err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"file":   p,
	}).Info("page rendered")
	return nil
}

func (r *Renderer) localize(id string, data map[string]interface{}) string {
	return utils.Localize(r.localizer, id, data)
}

func (r *Renderer) skip(province schema.Province, reason string) {
	r.scope.Counter(metricSkipped).Inc(1)
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"province": province.ShortName,
	}).Warn(reason)
}

// newChartID - element id of a chart, also used to address it from script
func newChartID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
