package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is a publicly submitted resource awaiting editorial review.
// Submissions never appear in the catalog until a curator republishes
// them as a Resource; the service only records them.
type Submission struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Ref is an opaque reference code returned to the submitter so they
	// can ask about their submission without exposing the document ID.
	Ref string `bson:"ref" json:"ref"`

	Title       string   `bson:"title" json:"title"`
	Slug        string   `bson:"slug" json:"slug"`
	URL         string   `bson:"url" json:"url"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Status string `bson:"status" json:"status"` // always "pending" on create

	SubmitterIP string    `bson:"submitter_ip,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
