package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// StoreTimeout is the per-operation bound applied at the store adapter, so a
// stalled database call cannot hold a request open indefinitely. Override
// with MONGO_TIMEOUT (seconds).
func StoreTimeout() time.Duration {
	if s := os.Getenv("MONGO_TIMEOUT"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 10 * time.Second
}

// InitDB connects to the document store addressed by MONGO_URL and returns
// the client together with the database named by DB_NAME.
func InitDB() (*mongo.Client, *mongo.Database, error) {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil, nil, fmt.Errorf("MONGO_URL environment variable is required")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, nil, fmt.Errorf("DB_NAME environment variable is required")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout())
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return client, client.Database(dbName), nil
}
