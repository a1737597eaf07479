// internal/domain/models/territoryassignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TerritoryAssignment links a salesperson to one territory.
// A salesperson may hold zero or more assignments; the pair
// (user_id, territory_id) is unique.
type TerritoryAssignment struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	TerritoryID primitive.ObjectID `bson:"territory_id" json:"territory_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
