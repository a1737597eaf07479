package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) createUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   name,
		FullNameCI: text.Fold(name),
		Email:      email,
		EmailCI:    email,
		Role:       role,
		Status:     "active",
		AuthMethod: "internal",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateSalesperson creates an active salesperson user.
func (f *Fixtures) CreateSalesperson(ctx context.Context, name, email string) models.User {
	return f.createUser(ctx, name, email, "salesperson")
}

// CreateManager creates an active manager user.
func (f *Fixtures) CreateManager(ctx context.Context, name, email string) models.User {
	return f.createUser(ctx, name, email, "manager")
}

// CreateAdmin creates an active admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	return f.createUser(ctx, name, email, "admin")
}

// CreateTerritory creates a territory with the given name.
func (f *Fixtures) CreateTerritory(ctx context.Context, name string) models.Territory {
	f.t.Helper()

	now := time.Now().UTC()
	terr := models.Territory{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("territories").InsertOne(ctx, terr); err != nil {
		f.t.Fatalf("failed to create test territory: %v", err)
	}
	return terr
}

// AssignTerritory links a salesperson to a territory.
func (f *Fixtures) AssignTerritory(ctx context.Context, userID, territoryID primitive.ObjectID) models.TerritoryAssignment {
	f.t.Helper()

	a := models.TerritoryAssignment{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		TerritoryID: territoryID,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("territory_assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}

// CreateGroup creates an active group owned by the given user.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, ownerID, territoryID primitive.ObjectID) models.Group {
	return f.CreateGroupWithStatus(ctx, name, ownerID, territoryID, "active")
}

// CreateGroupWithStatus creates a group with an explicit status.
func (f *Fixtures) CreateGroupWithStatus(ctx context.Context, name string, ownerID, territoryID primitive.ObjectID, status string) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Group{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		OwnerID:     ownerID,
		TerritoryID: territoryID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreateScheduledPost creates a pending post scheduled for the given time.
func (f *Fixtures) CreateScheduledPost(ctx context.Context, ownerID, groupID primitive.ObjectID, content string, scheduledFor time.Time) models.Post {
	return f.CreatePost(ctx, ownerID, groupID, content, "pending", scheduledFor, nil)
}

// CreatePostedPost creates a post already published at the given time.
func (f *Fixtures) CreatePostedPost(ctx context.Context, ownerID, groupID primitive.ObjectID, content string, postedAt time.Time) models.Post {
	return f.CreatePost(ctx, ownerID, groupID, content, "posted", postedAt, &postedAt)
}

// CreatePost creates a post with full control over status and timestamps.
func (f *Fixtures) CreatePost(ctx context.Context, ownerID, groupID primitive.ObjectID, content, status string, scheduledFor time.Time, postedAt *time.Time) models.Post {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Post{
		ID:           primitive.NewObjectID(),
		OwnerID:      ownerID,
		GroupID:      groupID,
		ShareID:      uuid.NewString(),
		Content:      content,
		Status:       status,
		ScheduledFor: scheduledFor,
		PostedAt:     postedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return p
}
