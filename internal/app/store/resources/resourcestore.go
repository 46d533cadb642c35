// Package resourcestore wraps the resources Mongo collection. Reads feed
// the in-memory catalog/recommender pipeline; writes come from seeding and
// editorial tooling.
package resourcestore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stashdir/stashd/internal/app/system/htmlsanitize"
	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/domain/models"
)

// Store accesses the resources collection.
type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateTitle = errors.New("a resource with this title already exists")
	ErrTitleRequired  = errors.New("title is required")
	ErrURLRequired    = errors.New("a valid http(s) url is required")
	ErrBadCategory    = errors.New("category is not one of the known categories")
)

// New binds a Store to the "resources" collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("resources")}
}

// Create inserts a resource, setting TitleCI, status, and timestamps and
// sanitizing the long-form body.
func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	if strings.TrimSpace(r.Title) == "" {
		return models.Resource{}, ErrTitleRequired
	}
	if !urlutil.IsValidAbsHTTPURL(r.URL) {
		return models.Resource{}, ErrURLRequired
	}
	if !taxonomy.ValidCategory(r.Category) {
		return models.Resource{}, ErrBadCategory
	}

	now := time.Now().UTC()
	r.ID = primitive.NewObjectID()
	r.TitleCI = text.Fold(r.Title)
	// Long-form bodies may carry basic formatting; anything beyond the
	// UGC policy is stripped before storage.
	r.Body = htmlsanitize.Sanitize(r.Body)
	if r.Status == "" {
		r.Status = models.StatusPublished
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Resource{}, ErrDuplicateTitle
		}
		return models.Resource{}, err
	}
	return r, nil
}

// GetByID returns one resource by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Resource, error) {
	var r models.Resource
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// GetByIDs returns resources for the given IDs in no particular order.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Resource
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBySlug returns a published resource whose explicit slug matches.
// Callers fall back to title-derived slugs via AllPublished when this
// misses (not every resource has a slug set).
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Resource, error) {
	var r models.Resource
	err := s.c.FindOne(ctx, bson.M{"slug": slug, "status": models.StatusPublished}).Decode(&r)
	if err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// AllPublished returns every published resource, newest first. The
// catalog and recommender pipelines take this full list as immutable
// input, mirroring the site's fetch-all-then-filter model.
func (s *Store) AllPublished(ctx context.Context) ([]models.Resource, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"status": models.StatusPublished}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Resource
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a resource, returning the deleted count (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of resources matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
