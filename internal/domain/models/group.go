// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a posting destination (a social-media group or audience)
// that a user schedules posts into. Groups live inside a territory
// and belong to the user who registered them.
type Group struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Description string             `bson:"description" json:"description"`
	OwnerID     primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	TerritoryID primitive.ObjectID `bson:"territory_id,omitempty" json:"territory_id,omitempty"`

	Status string `bson:"status" json:"status"` // active | archived

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
