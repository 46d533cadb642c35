package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// EnvTestMongoURI names the environment variable that enables
// database-backed tests.
const EnvTestMongoURI = "STASHD_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB and returns a database scoped
// to this test, dropped on cleanup. Tests calling this are skipped unless
// STASHD_TEST_MONGO_URI is set.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(EnvTestMongoURI)
	if uri == "" {
		t.Skipf("skipping: %s not set", EnvTestMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect to test mongo: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("ping test mongo: %v", err)
	}

	db := client.Database(fmt.Sprintf("stashd_test_%d", time.Now().UnixNano()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// EnsureResourceIndexes creates the unique title index tests that exercise
// duplicate detection rely on.
func EnsureResourceIndexes(t *testing.T, db *mongo.Database) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := db.Collection("resources").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title_ci", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
