package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UCDC-Institute/Website_BCMS/settings"
)

var Ctx = context.Background()

var settingsData = settings.GetSettings()

type MongoConnection struct {
	host     string
	database string

	once   sync.Once
	client *mongo.Client
}

func NewConnection(host, database string) *MongoConnection {
	return &MongoConnection{
		host:     host,
		database: database,
	}
}

func (conn *MongoConnection) uri() string {
	connection := settingsData.MONGO_CONNECTION
	if connection == "" {
		connection = "mongodb"
	}
	if settingsData.MONGO_ROOT_USERNAME != "" {
		return fmt.Sprintf(
			"%s://%s:%s@%s",
			connection,
			settingsData.MONGO_ROOT_USERNAME,
			settingsData.MONGO_ROOT_PASSWORD,
			conn.host,
		)
	}
	return fmt.Sprintf("%s://%s", connection, conn.host)
}

// connect dials Mongo with exponential backoff. The connection is
// established once, on first collection use.
func (conn *MongoConnection) connect() {
	conn.once.Do(func() {
		retryBackoff := backoff.NewExponentialBackOff()
		retryBackoff.MaxElapsedTime = time.Minute

		err := backoff.Retry(func() error {
			ctx, cancel := context.WithTimeout(Ctx, time.Second*10)
			defer cancel()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(conn.uri()))
			if err != nil {
				return err
			}
			if err := client.Ping(ctx, nil); err != nil {
				return err
			}
			conn.client = client
			return nil
		}, retryBackoff)
		if err != nil {
			log.Fatalf("MongoDB connection error: %v", err)
		}
	})
}

func (conn *MongoConnection) GetCollection(collection string) *mongo.Collection {
	conn.connect()
	return conn.client.Database(conn.database).Collection(collection)
}

func (conn *MongoConnection) GetCollections() ([]string, error) {
	conn.connect()
	return conn.client.Database(conn.database).ListCollectionNames(Ctx, map[string]string{})
}
