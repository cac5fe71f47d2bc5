package database

import (
	"context"
	"log"
	"sync"
	"time"

	"praxia/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	initOnce sync.Once
)

// InitDB establishes the MongoDB connection. Safe to call more than once;
// only the first call connects.
func InitDB() {
	initOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
		c, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			log.Fatalf("failed to connect to MongoDB: %v", err)
		}
		if err := c.Ping(ctx, nil); err != nil {
			log.Fatalf("failed to ping MongoDB: %v", err)
		}
		client = c
		log.Println("Connected to MongoDB successfully!")
	})
}

// Client returns the connected MongoDB client.
func Client() *mongo.Client {
	if client == nil {
		InitDB()
	}
	return client
}

// DB returns the application database handle handed to repositories.
func DB() *mongo.Database {
	return Client().Database(config.AppConfig.DatabaseName)
}
