// internal/app/store/territoryassign/assignstore.go
package assignstore

import (
	"context"
	"errors"
	"time"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrAlreadyAssigned = errors.New("salesperson is already assigned to this territory")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("territory_assignments")}
}

// Assign links a salesperson to a territory.
func (s *Store) Assign(ctx context.Context, userID, territoryID primitive.ObjectID) (models.TerritoryAssignment, error) {
	a := models.TerritoryAssignment{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		TerritoryID: territoryID,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.TerritoryAssignment{}, ErrAlreadyAssigned
		}
		return models.TerritoryAssignment{}, err
	}
	return a, nil
}

// Unassign removes the link between a salesperson and a territory.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Unassign(ctx context.Context, userID, territoryID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"user_id": userID, "territory_id": territoryID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByUser returns the number of territories assigned to a salesperson.
func (s *Store) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"user_id": userID})
}

// TerritoryIDsByUser returns the IDs of the territories a salesperson
// is assigned to.
func (s *Store) TerritoryIDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []primitive.ObjectID
	for cur.Next(ctx) {
		var a models.TerritoryAssignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a.TerritoryID)
	}
	return out, cur.Err()
}

// EnsureIndexes creates the unique (user, territory) pair index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "territory_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("idx_assignment_pair"),
	})
	return err
}
