// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a content item scheduled into a group.
//
// Lifecycle: pending -> ready -> posted (or failed). The publishing
// engine that moves posts to "posted" is a separate service; this app
// only creates pending posts and reads the rest.
type Post struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	OwnerID primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	GroupID primitive.ObjectID `bson:"group_id" json:"group_id"`

	// ShareID is the stable public reference used in outbound links.
	ShareID string `bson:"share_id" json:"share_id"`

	Content string `bson:"content" json:"content"`
	Status  string `bson:"status" json:"status"` // pending | ready | posted | failed

	ScheduledFor time.Time  `bson:"scheduled_for" json:"scheduled_for"`
	PostedAt     *time.Time `bson:"posted_at,omitempty" json:"posted_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
