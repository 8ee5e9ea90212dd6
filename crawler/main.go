package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ncov-charts/external/dxy"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/store"
	"github.com/bitmark-inc/ncov-charts/utils"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ncov")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("source.url", dxy.DefaultURL)
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("cache.dir", ".")
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

func main() {
	var configFile string

	pflag.StringVarP(&configFile, "config", "c", "./config.yaml", "[optional] path of configuration file")
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
	defer sentry.Flush(2 * time.Second)

	scope := utils.NewRunScope("crawler")
	defer utils.LogMetrics(scope)

	var persister snapshotPersister
	if conn := viper.GetString("mongo.conn"); conn != "" {
		opts := options.Client().ApplyURI(conn)
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		if err = mongoClient.Connect(context.Background()); nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}

		dbName := viper.GetString("mongo.database")
		if err := schema.NewMongoDBIndexerWithClient(mongoClient, dbName).IndexSnapshotCollection(); nil != err {
			log.WithField("prefix", logPrefix).Warnf("index snapshot collection: %s", err)
		}
		if err := schema.NewMongoDBIndexerWithClient(mongoClient, dbName).IndexConfirmCollection(); nil != err {
			log.WithField("prefix", logPrefix).Warnf("index confirm collection: %s", err)
		}

		mStore := store.NewMongoStore(mongoClient, dbName)
		defer mStore.Close()
		persister = mStore
	}

	source := dxy.New(viper.GetString("source.url"), viper.GetDuration("source.timeout"))
	crawler := newCrawler(source, store.NewFileStore(viper.GetString("cache.dir")), persister, scope)

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("source.timeout")+defaultTimeout)
	defer cancel()

	if err := crawler.Run(ctx); nil != err {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		log.WithField("prefix", logPrefix).Fatalf("crawl dashboard: %s", err)
	}
}
