package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is one newsletter signup. Email is stored normalized
// (trimmed, lowercased) and is unique per list.
type Subscriber struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email  string             `bson:"email" json:"email"`
	Source string             `bson:"source,omitempty" json:"source,omitempty"` // e.g. "website"

	Subscribed bool      `bson:"subscribed" json:"subscribed"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
