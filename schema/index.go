package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RequestCacheCollection = "requestCache"
	WorkingSetCollection   = "workingSets"
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

	return &MongoDBIndexer{
		ctx:      ctx,
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
	panicIfError(m.IndexRequestCacheCollection())
	panicIfError(m.IndexWorkingSetCollection())
}

// IndexRequestCacheCollection ensures one cached snapshot per account
func (m *MongoDBIndexer) IndexRequestCacheCollection() error {
	return m.createIndex(RequestCacheCollection, mongo.IndexModel{
		Keys: bson.M{
			"account_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

// IndexWorkingSetCollection ensures one materialized working set per account
func (m *MongoDBIndexer) IndexWorkingSetCollection() error {
	return m.createIndex(WorkingSetCollection, mongo.IndexModel{
		Keys: bson.M{
			"account_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
