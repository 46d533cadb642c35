package testutil

import (
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stashdir/stashd/internal/domain/models"
)

// Resource builds a published test resource with sensible defaults. The
// in-memory catalog and recommender pipelines work on plain model values,
// so most tests never need a database.
func Resource(title, category string, opts ...ResourceOption) models.Resource {
	res := models.Resource{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		URL:       "https://example.com/" + text.Fold(title),
		Category:  category,
		Status:    models.StatusPublished,
		CreatedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

// ResourceOption mutates a test resource under construction.
type ResourceOption func(*models.Resource)

// WithDescription sets the description.
func WithDescription(desc string) ResourceOption {
	return func(r *models.Resource) { r.Description = desc }
}

// WithTags sets the tags.
func WithTags(tags ...string) ResourceOption {
	return func(r *models.Resource) { r.Tags = tags }
}

// WithSlug sets an explicit slug.
func WithSlug(slug string) ResourceOption {
	return func(r *models.Resource) { r.Slug = slug }
}

// WithCreatedAt sets the creation timestamp. Use time.Time{} for an
// undated resource.
func WithCreatedAt(t time.Time) ResourceOption {
	return func(r *models.Resource) { r.CreatedAt = t }
}

// WithIndustries sets the industry facets.
func WithIndustries(industries ...string) ResourceOption {
	return func(r *models.Resource) { r.Industries = industries }
}

// WithUseCases sets the explicit use-case facets.
func WithUseCases(useCases ...string) ResourceOption {
	return func(r *models.Resource) { r.UseCases = useCases }
}

// WithPricing sets the pricing model.
func WithPricing(pricing string) ResourceOption {
	return func(r *models.Resource) { r.Pricing = pricing }
}

// WithQuality sets the editorial quality score.
func WithQuality(q int) ResourceOption {
	return func(r *models.Resource) { r.QualityScore = &q }
}

// WithAdoption sets the adoption tier.
func WithAdoption(tier string) ResourceOption {
	return func(r *models.Resource) { r.AdoptionTier = tier }
}

// Featured marks the resource as featured.
func Featured() ResourceOption {
	return func(r *models.Resource) { r.Featured = true }
}

// Collection builds a test collection over the given resources,
// preserving their order.
func Collection(title string, resources ...models.Resource) models.Collection {
	col := models.Collection{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, r := range resources {
		col.ResourceIDs = append(col.ResourceIDs, r.ID)
	}
	return col
}
