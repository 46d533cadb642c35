// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// ConnectDB establishes the MongoDB connection used by all stores.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the stores rely on. Index creation is
// idempotent, so this runs on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	resources := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
	if _, err := db.Collection("resources").Indexes().CreateMany(ctx, resources); err != nil {
		return fmt.Errorf("resources indexes: %w", err)
	}

	collections := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{Keys: bson.D{{Key: "resource_ids", Value: 1}}},
	}
	if _, err := db.Collection("collections").Indexes().CreateMany(ctx, collections); err != nil {
		return fmt.Errorf("collections indexes: %w", err)
	}

	submissions := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ref", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := db.Collection("submissions").Indexes().CreateMany(ctx, submissions); err != nil {
		return fmt.Errorf("submissions indexes: %w", err)
	}

	subscribers := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("subscribers").Indexes().CreateMany(ctx, subscribers); err != nil {
		return fmt.Errorf("subscribers indexes: %w", err)
	}

	logger.Info("ensured MongoDB indexes")
	return nil
}
