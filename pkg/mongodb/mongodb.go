package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/medisage/medisage_backend/config"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	if cfg.URI == "" {
		return nil, nil, fmt.Errorf("mongodb uri is empty")
	}

	timeout := 10 * time.Second
	if cfg.ConnectTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "medisage"
	}

	return client, client.Database(name), nil
}
