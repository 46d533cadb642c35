package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is one catalog entry: a tool, site, library, or article with
// its classification and the optional recommender-facing facets.
//
// Every recommender facet is optional. Absent fields contribute nothing
// to scoring; they are never an error.
type Resource struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	// Slug is the explicit URL slug. When empty or not URL-safe the public
	// slug is derived from the title (see slugify.ResourceSlug).
	Slug string `bson:"slug,omitempty" json:"slug,omitempty"`

	URL         string `bson:"url" json:"url"`
	Description string `bson:"description" json:"description"`

	// Body is optional long-form content shown below the description.
	Body    string       `bson:"body,omitempty" json:"body,omitempty"`
	Sources []SourceLink `bson:"sources,omitempty" json:"sources,omitempty"`

	Category     string   `bson:"category" json:"category"`                               // closed enumeration, see taxonomy.Categories
	ResourceType string   `bson:"resource_type,omitempty" json:"resourceType,omitempty"` // e.g. "app", "library", "tool"
	Tags         []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Featured bool `bson:"featured" json:"featured"`

	// Recommender facets.
	Industries       []string `bson:"industries,omitempty" json:"industries,omitempty"`
	UseCases         []string `bson:"use_cases,omitempty" json:"useCases,omitempty"`
	Pricing          string   `bson:"pricing,omitempty" json:"pricing,omitempty"`
	QualityScore     *int     `bson:"quality_score,omitempty" json:"qualityScore,omitempty"` // honored only when 1..5
	AdoptionTier     string   `bson:"adoption_tier,omitempty" json:"adoptionTier,omitempty"` // low, medium, high, popular
	RecommenderBlurb string   `bson:"recommender_blurb,omitempty" json:"recommenderBlurb,omitempty"`

	Status string `bson:"status" json:"status"` // "published" or "pending"

	// CreatedAt drives recency filtering and newest-first ordering.
	// The zero value means "no timestamp": excluded by recency windows,
	// sorted last under newest-first.
	CreatedAt time.Time  `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// SourceLink is a credible citation attached to a resource's long-form body.
type SourceLink struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}

// Resource status values.
const (
	StatusPublished = "published"
	StatusPending   = "pending"
)
