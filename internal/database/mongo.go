package database

import (
	"context"
	"fmt"

	"stepup-tasks/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the process-wide Mongo client and returns the configured
// database handle. The client is reused across all requests; callers own
// the returned disconnect function.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, func(context.Context) error, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return client.Database(cfg.Database), client.Disconnect, nil
}

// Ping verifies the connection is usable within the configured timeout.
func Ping(ctx context.Context, db *mongo.Database, cfg config.MongoConfig) error {
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := db.Client().Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}
