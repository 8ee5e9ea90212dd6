package main

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/share/snapshot"
	"github.com/bitmark-inc/ncov-charts/store"
	"github.com/bitmark-inc/ncov-charts/utils"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ncov")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("cache.dir", ".")
}

func main() {
	var fromFlag, toFlag string
	pflag.StringVar(&fromFlag, "from", "1-22", "first day <month>-<day>")
	pflag.StringVar(&toFlag, "to", "", "last day <month>-<day>, default today in GMT+8")
	pflag.Parse()

	utils.InitLog(utils.LogConfig{Level: viper.GetString("log.level")})

	from, err := schema.ParseDate(fromFlag)
	if err != nil {
		panic(err)
	}

	now := time.Now()
	to := utils.Today(now)
	if toFlag != "" {
		if to, err = schema.ParseDate(toFlag); err != nil {
			panic(err)
		}
	}

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	dbName := viper.GetString("mongo.database")
	schema.NewMongoDBIndexerWithClient(client, dbName).IndexAll()

	mStore := store.NewMongoStore(client, dbName)
	defer mStore.Close()

	year := now.In(utils.GetLocation(utils.DashboardTimezone)).Year()
	n, err := snapshot.ImportCache(ctx, store.NewFileStore(viper.GetString("cache.dir")), mStore, from, to, year)
	if err != nil {
		panic(err)
	}

	log.WithFields(log.Fields{
		"prefix":   "import",
		"imported": n,
	}).Info("done")
}
