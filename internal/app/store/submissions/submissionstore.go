// Package submissionstore records publicly submitted resources awaiting
// editorial review.
package submissionstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stashdir/stashd/internal/domain/models"
)

// Store accesses the submissions collection.
type Store struct {
	c *mongo.Collection
}

// New binds a Store to the "submissions" collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("submissions")}
}

// Create inserts a pending submission. The caller has already validated
// and sanitized the fields and assigned the reference code.
func (s *Store) Create(ctx context.Context, sub models.Submission) (models.Submission, error) {
	sub.ID = primitive.NewObjectID()
	sub.Status = models.StatusPending
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		return models.Submission{}, err
	}
	return sub, nil
}

// GetByRef returns a submission by its public reference code.
func (s *Store) GetByRef(ctx context.Context, ref string) (models.Submission, error) {
	var sub models.Submission
	if err := s.c.FindOne(ctx, bson.M{"ref": ref}).Decode(&sub); err != nil {
		return models.Submission{}, err
	}
	return sub, nil
}

// Pending returns pending submissions, oldest first, for review tooling.
func (s *Store) Pending(ctx context.Context) ([]models.Submission, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"status": models.StatusPending}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Submission
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of submissions matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
