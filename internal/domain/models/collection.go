package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is a curated, ordered set of resources published as one page
// (e.g. "Launch a SaaS in a weekend"). Member order is editorial and
// preserved through fetch and display.
type Collection struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"-"`

	Slug        string `bson:"slug,omitempty" json:"slug,omitempty"`
	Description string `bson:"description" json:"description"`

	// ResourceIDs are ordered references into the resources collection.
	ResourceIDs []primitive.ObjectID `bson:"resource_ids" json:"-"`

	Featured bool `bson:"featured" json:"featured"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
