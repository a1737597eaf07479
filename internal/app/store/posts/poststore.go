// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"time"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/status"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// UpcomingPost is one entry of the dashboard's soon-to-fire preview:
// a scheduled post joined with its group's display name (and the
// group's territory name, which the current view does not render).
type UpcomingPost struct {
	ID            primitive.ObjectID `bson:"_id"`
	Content       string             `bson:"content"`
	Status        string             `bson:"status"`
	ScheduledFor  time.Time          `bson:"scheduled_for"`
	GroupName     string             `bson:"group_name"`
	TerritoryName string             `bson:"territory_name"`
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var p models.Post
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Create inserts a new pending post and assigns its share ID.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.ShareID = uuid.NewString()
	if p.Status == "" {
		p.Status = status.PostPending
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// ListByOwner returns a user's posts, soonest schedule first.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, limit int64) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_for", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountScheduledByOwner counts a user's posts still waiting to fire
// (status pending or ready).
func (s *Store) CountScheduledByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"owner_id": ownerID,
		"status":   bson.M{"$in": status.Scheduled()},
	})
}

// CountPostedSince counts a user's posts published at or after the
// given instant. Pass local midnight to get "posted today".
func (s *Store) CountPostedSince(ctx context.Context, ownerID primitive.ObjectID, since time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"owner_id":  ownerID,
		"status":    status.PostPosted,
		"posted_at": bson.M{"$gte": since},
	})
}

// ListUpcoming returns up to limit of the user's pending/ready posts,
// soonest first, each joined with its group name and (nominally) the
// group's territory name.
func (s *Store) ListUpcoming(ctx context.Context, ownerID primitive.ObjectID, limit int64) ([]UpcomingPost, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"owner_id": ownerID,
			"status":   bson.M{"$in": status.Scheduled()},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "scheduled_for", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "groups",
			"localField":   "group_id",
			"foreignField": "_id",
			"as":           "group",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$group",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "territories",
			"localField":   "group.territory_id",
			"foreignField": "_id",
			"as":           "territory",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$territory",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":            1,
			"content":        1,
			"status":         1,
			"scheduled_for":  1,
			"group_name":     "$group.name",
			"territory_name": "$territory.name",
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []UpcomingPost{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the owner/status indexes used by the dashboard
// counts and the upcoming preview.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "owner_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "scheduled_for", Value: 1},
			},
			Options: options.Index().SetName("idx_posts_owner_sched"),
		},
		{
			Keys: bson.D{
				{Key: "owner_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "posted_at", Value: 1},
			},
			Options: options.Index().SetName("idx_posts_owner_posted"),
		},
		{
			Keys:    bson.D{{Key: "share_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_posts_share"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
