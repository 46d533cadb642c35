// Package collectionstore wraps the collections Mongo collection.
package collectionstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stashdir/stashd/internal/domain/models"
)

// Store accesses the collections collection.
type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateTitle = errors.New("a collection with this title already exists")
	ErrTitleRequired  = errors.New("title is required")
)

// New binds a Store to the "collections" collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("collections")}
}

// Create inserts a collection, setting TitleCI and timestamps. Member
// order in ResourceIDs is preserved as given.
func (s *Store) Create(ctx context.Context, c models.Collection) (models.Collection, error) {
	if strings.TrimSpace(c.Title) == "" {
		return models.Collection{}, ErrTitleRequired
	}
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.TitleCI = text.Fold(c.Title)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Collection{}, ErrDuplicateTitle
		}
		return models.Collection{}, err
	}
	return c, nil
}

// All returns every collection, newest first.
func (s *Store) All(ctx context.Context) ([]models.Collection, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Collection
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBySlug returns the collection whose explicit slug matches. Callers
// fall back to title-derived slugs via All when this misses.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Collection, error) {
	var c models.Collection
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		return models.Collection{}, err
	}
	return c, nil
}

// ContainingResource returns the collections that reference the given
// resource, newest first.
func (s *Store) ContainingResource(ctx context.Context, resourceID primitive.ObjectID) ([]models.Collection, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"resource_ids": resourceID}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Collection
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
