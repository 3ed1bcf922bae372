package model

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hyblock/hyblock-backend/internal/config"
)

const setupTimeout = 30 * time.Second

// Setup creates the indexes the service relies on. Safe to run repeatedly.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	clientOps := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		clientOps = clientOps.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.DbName)

	collections := []string{CollectionMetricCollection, CollectionRankCollection}
	for _, name := range collections {
		index := mongo.IndexModel{
			Keys: bson.D{{Key: "collection_id", Value: 1}},
		}
		if _, err := database.Collection(name).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("failed to create collection_id index on %s: %w", name, err)
		}
	}

	return nil
}
