package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ncov-charts/api"
	"github.com/bitmark-inc/ncov-charts/geo"
	"github.com/bitmark-inc/ncov-charts/store"
	"github.com/bitmark-inc/ncov-charts/utils"
)

var (
	server *api.Server
)

func init() {
	viper.SetDefault("cache.dir", ".")
	viper.SetDefault("chart.dir", "html-charts")
	viper.SetDefault("chart.known_cities", "data/city_names.txt")
	viper.SetDefault("chart.store", "file")
	viper.SetDefault("server.port", "8080")
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

	var mStore store.MongoStore

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown preview server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mStore != nil {
			mStore.Close()
		}

		os.Exit(1)
	}()

	pflag.StringVarP(&configFile, "config", "c", "./config.yaml", "[optional] path of configuration file")
	pflag.Parse()

	loadConfig(configFile)

	utils.InitLog(utils.LogConfig{
		Level:      viper.GetString("log.level"),
		File:       viper.GetString("log.file"),
		MaxSize:    viper.GetInt("log.max_size"),
		MaxBackups: viper.GetInt("log.max_backups"),
	})

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	var reader store.SnapshotReader = store.NewFileStore(viper.GetString("cache.dir"))
	if viper.GetString("chart.store") == "mongo" {
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		if err = mongoClient.Connect(context.Background()); nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}

		mStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
		reader = mStore
	}

	knownNames, err := geo.LoadKnownNames(viper.GetString("chart.known_cities"))
	if err != nil {
		log.WithField("prefix", "init").Warnf("load known city names: %s", err)
	}

	server = api.NewServer(
		reader,
		viper.GetString("chart.dir"),
		geo.NewCityNameResolver(knownNames),
		viper.GetInt("chart.buckets"))
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
