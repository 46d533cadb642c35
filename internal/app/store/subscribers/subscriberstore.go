// Package subscriberstore records newsletter signups.
package subscriberstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stashdir/stashd/internal/domain/models"
)

// Store accesses the subscribers collection.
type Store struct {
	c *mongo.Collection
}

// New binds a Store to the "subscribers" collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("subscribers")}
}

// Upsert records a subscription for the given normalized email.
// Subscribing twice is idempotent: the existing document is re-marked
// subscribed rather than duplicated.
func (s *Store) Upsert(ctx context.Context, email, source string) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"subscribed": true,
			"source":     source,
		},
		"$setOnInsert": bson.M{
			"email":      email,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	return err
}

// Get returns the subscriber with the given normalized email.
func (s *Store) Get(ctx context.Context, email string) (models.Subscriber, error) {
	var sub models.Subscriber
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&sub); err != nil {
		return models.Subscriber{}, err
	}
	return sub, nil
}

// Count returns the number of subscribers matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
