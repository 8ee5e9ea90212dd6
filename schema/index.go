package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return NewMongoDBIndexerWithClient(client, dbName)
}

func NewMongoDBIndexerWithClient(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexSnapshotCollection())
	panicIfError(m.IndexConfirmCollection())
}

func (m *MongoDBIndexer) IndexSnapshotCollection() error {
	return m.createIndex(SnapshotCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date.month", Value: 1},
			{Key: "date.day", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexConfirmCollection() error {
	return m.createIndex(ConfirmCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "province", Value: 1},
			{Key: "city", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
