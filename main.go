package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ncov-charts/chart"
	"github.com/bitmark-inc/ncov-charts/consts"
	"github.com/bitmark-inc/ncov-charts/geo"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/stats"
	"github.com/bitmark-inc/ncov-charts/store"
	"github.com/bitmark-inc/ncov-charts/utils"
)

const (
	logPrefix = "init"

	storeFile  = "file"
	storeMongo = "mongo"
)

func init() {
	viper.SetDefault("cache.dir", ".")
	viper.SetDefault("chart.dir", "html-charts")
	viper.SetDefault("chart.known_cities", "data/city_names.txt")
	viper.SetDefault("chart.buckets", chart.DefaultRanges)
	viper.SetDefault("chart.focus", consts.DefaultFocusProvince)
	viper.SetDefault("chart.tendency", true)
	viper.SetDefault("chart.pie", true)
	viper.SetDefault("chart.map", true)
	viper.SetDefault("chart.store", storeFile)
	viper.SetDefault("i18n.lang", "zh")
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ncov")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func fatal(err error, msg string) {
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	log.WithField("prefix", logPrefix).Fatalf("%s: %s", msg, err)
}

func snapshotReader(ctx context.Context) (store.SnapshotReader, func()) {
	switch s := viper.GetString("chart.store"); s {
	case storeFile:
		return store.NewFileStore(viper.GetString("cache.dir")), func() {}

	case storeMongo:
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		if err = mongoClient.Connect(ctx); nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}

		mStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
		return mStore, mStore.Close

	default:
		log.WithField("prefix", logPrefix).Panicf("unknown chart store %q", s)
	}
	return nil, nil
}

func tendency(ctx context.Context, reader store.SnapshotReader, date schema.Date, year int) stats.Tendency {
	start := viper.GetString("tendency.start")
	if start == "" {
		return stats.DefaultTendency()
	}

	from, err := schema.ParseDate(start)
	if nil != err {
		fatal(err, "parse tendency.start")
	}

	snapshots, err := store.Snapshots(ctx, reader, from, date, year)
	if nil != err {
		fatal(err, "read tendency snapshots")
	}

	t, err := stats.TendencyFromSnapshots(snapshots, viper.GetString("chart.focus"))
	if nil != err {
		fatal(err, "build tendency")
	}
	return t
}

func main() {
	var (
		configFile string
		dateFlag   string
	)

	pflag.StringVarP(&configFile, "config", "c", "./config.yaml", "[optional] path of configuration file")
	pflag.StringVarP(&dateFlag, "date", "d", "", "[optional] snapshot date <month>-<day>, default today in GMT+8")
	pflag.Parse()

	loadConfig(configFile)

	utils.InitLog(utils.LogConfig{
		Level:      viper.GetString("log.level"),
		File:       viper.GetString("log.file"),
		MaxSize:    viper.GetInt("log.max_size"),
		MaxBackups: viper.GetInt("log.max_backups"),
	})

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", logPrefix).Info("Initialized sentry")
	defer sentry.Flush(2 * time.Second)

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); nil != err {
		fatal(err, "load i18n messages")
	}

	now := time.Now()
	date := utils.Today(now)
	if dateFlag != "" {
		d, err := schema.ParseDate(dateFlag)
		if nil != err {
			fatal(err, "parse date")
		}
		date = d
	}

	knownNames, err := geo.LoadKnownNames(viper.GetString("chart.known_cities"))
	if nil != err {
		if !os.IsNotExist(err) {
			fatal(err, "load known city names")
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"file":   viper.GetString("chart.known_cities"),
		}).Warn("no known city names, only table and suffix rules apply")
	}

	scope := utils.NewRunScope("chart")
	defer utils.LogMetrics(scope)

	ctx := context.Background()
	reader, closeReader := snapshotReader(ctx)
	defer closeReader()

	snapshot, err := reader.Snapshot(ctx, date)
	if nil != err {
		fatal(err, "read snapshot "+date.String())
	}
	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"date":      date.String(),
		"provinces": len(snapshot.Provinces),
		"confirmed": snapshot.Total.ConfirmedCount,
	}).Info("snapshot loaded")

	renderer := chart.New(chart.Config{
		Dir:     viper.GetString("chart.dir"),
		Buckets: viper.GetInt("chart.buckets"),
		Focus:   viper.GetString("chart.focus"),
		Lang:    viper.GetString("i18n.lang"),
	}, geo.NewCityNameResolver(knownNames), scope)

	sel := chart.Selection{
		Tendency: viper.GetBool("chart.tendency"),
		Pie:      viper.GetBool("chart.pie"),
		Map:      viper.GetBool("chart.map"),
	}

	var t stats.Tendency
	if sel.Tendency {
		t = tendency(ctx, reader, date, now.In(utils.GetLocation(utils.DashboardTimezone)).Year())
	}

	if err := renderer.Render(snapshot, t, sel); nil != err {
		fatal(err, "render charts")
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"dir":    renderer.OutputDir(date),
	}).Info("charts rendered")
}
