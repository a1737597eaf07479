// internal/app/store/territories/territorystore.go
package territorystore

import (
	"context"
	"errors"
	"time"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/status"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateTerritoryName = errors.New("a territory with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("territories")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Territory, error) {
	var t models.Territory
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.Territory{}, err
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, t models.Territory) (models.Territory, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.NameCI = text.Fold(t.Name)
	if t.Status == "" {
		t.Status = status.Active
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, t)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Territory{}, ErrDuplicateTerritoryName
		}
		return models.Territory{}, err
	}
	return t, nil
}

// List returns all territories ordered by name.
func (s *Store) List(ctx context.Context) ([]models.Territory, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Territory
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAll returns the total number of territories. Managers (and any
// other non-salesperson role) are considered linked to all of them.
func (s *Store) CountAll(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique name index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name_ci", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_territories_name"),
	})
	return err
}
