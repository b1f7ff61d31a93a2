package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ronak1998bacancy/E-commerce/config"
)

var Client *mongo.Client
var DB *mongo.Database
var ProductCollection *mongo.Collection

// ConnectMongo connects to the Mongo catalog source. Only called when
// CATALOG_SOURCE=mongo; the process never writes to the collection.
func ConnectMongo() error {
	uri := config.GetEnv("MONGO_URI", "")
	dbName := config.GetEnv("DB_NAME", "")

	if uri == "" || dbName == "" {
		return fmt.Errorf("MONGO_URI or DB_NAME not set in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}

	Client = client
	DB = client.Database(dbName)
	ProductCollection = DB.Collection(config.GetEnv("PRODUCT_COLLECTION", "products"))

	return nil
}
