// internal/app/store/dash/dashstore.go
package dashstore

import (
	"context"
	"errors"
	"time"

	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	territorystore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/territories"
	assignstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/territoryassign"
	userstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/users"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/authz"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// upcomingLimit bounds the soon-to-fire preview.
const upcomingLimit = 3

// Identity is the authenticated user a summary is scoped to.
// It is passed in explicitly so the aggregation can be driven (and
// tested) without any ambient session state.
type Identity struct {
	UserID primitive.ObjectID
	Email  string
}

// Stats is the set of per-user totals shown on the dashboard.
// Derived on every load, never persisted.
type Stats struct {
	ScheduledPosts int64
	ActiveGroups   int64
	Territories    int64
	PostedToday    int64
}

// Summary is one complete aggregation pass: the four counts plus the
// bounded upcoming-post preview and the resolved display name.
type Summary struct {
	DisplayName string
	Stats       Stats
	Upcoming    []poststore.UpcomingPost
}

// Store issues the dashboard's read queries against the underlying
// collections.
type Store struct {
	users       *userstore.Store
	posts       *poststore.Store
	groups      *groupstore.Store
	territories *territorystore.Store
	assignments *assignstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:       userstore.New(db),
		posts:       poststore.New(db),
		groups:      groupstore.New(db),
		territories: territorystore.New(db),
		assignments: assignstore.New(db),
	}
}

// Fetch runs one aggregation pass for the given identity.
//
// The six or seven reads are issued sequentially and are NOT a
// consistent snapshot: concurrent writes may leave the counts mutually
// inconsistent for one render. That trade-off is deliberate; a reload
// resolves it.
//
// Absence of rows yields zero counts and an empty preview. Any query
// error is logged and the whole pass falls back to the all-zero,
// empty-list Summary; no error ever reaches the caller and nothing is
// partially rendered.
func (s *Store) Fetch(ctx context.Context, log *zap.Logger, ident Identity) Summary {
	var out Summary
	out.Upcoming = []poststore.UpcomingPost{}

	// Profile: display name and role. A missing profile row is not an
	// error; the name falls back to the identity's email and the role
	// stays unknown (which takes the global-territory branch below).
	role := ""
	u, err := s.users.Profile(ctx, ident.UserID)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		out.DisplayName = ident.Email
	case err != nil:
		return s.fail(log, "profile", err)
	default:
		out.DisplayName = u.FullName
		if out.DisplayName == "" {
			out.DisplayName = u.Email
		}
		if out.DisplayName == "" {
			out.DisplayName = ident.Email
		}
		role = normalize.Role(u.Role)
	}

	n, err := s.posts.CountScheduledByOwner(ctx, ident.UserID)
	if err != nil {
		return s.fail(log, "scheduled posts", err)
	}
	out.Stats.ScheduledPosts = n

	n, err = s.groups.CountActiveByOwner(ctx, ident.UserID)
	if err != nil {
		return s.fail(log, "active groups", err)
	}
	out.Stats.ActiveGroups = n

	// Salespeople see only their assigned territories; every other
	// role sees the global total.
	if role == authz.RoleSalesperson {
		n, err = s.assignments.CountByUser(ctx, ident.UserID)
	} else {
		n, err = s.territories.CountAll(ctx)
	}
	if err != nil {
		return s.fail(log, "territories", err)
	}
	out.Stats.Territories = n

	n, err = s.posts.CountPostedSince(ctx, ident.UserID, startOfToday(time.Now()))
	if err != nil {
		return s.fail(log, "posted today", err)
	}
	out.Stats.PostedToday = n

	upcoming, err := s.posts.ListUpcoming(ctx, ident.UserID, upcomingLimit)
	if err != nil {
		return s.fail(log, "upcoming posts", err)
	}
	out.Upcoming = upcoming

	return out
}

// fail logs the failed step and returns the documented fallback:
// zeroed stats and an empty preview.
func (s *Store) fail(log *zap.Logger, step string, err error) Summary {
	if log != nil {
		log.Error("dashboard aggregation failed",
			zap.String("step", step),
			zap.Error(err))
	}
	return Summary{Upcoming: []poststore.UpcomingPost{}}
}

// startOfToday returns local midnight for the given instant.
func startOfToday(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
