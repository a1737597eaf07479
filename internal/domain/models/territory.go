// internal/domain/models/territory.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Territory is a named sales partition (a region of groups and accounts).
// Salespeople are linked to territories through territory_assignments;
// managers are implicitly linked to every territory.
type Territory struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"`
	Region string             `bson:"region,omitempty" json:"region,omitempty"`
	Status string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
