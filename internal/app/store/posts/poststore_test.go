package poststore_test

import (
	"testing"
	"time"

	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/status"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_DefaultsAndShareID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := poststore.New(db)
	created, err := store.Create(ctx, models.Post{
		OwnerID:      primitive.NewObjectID(),
		GroupID:      primitive.NewObjectID(),
		Content:      "hello",
		ScheduledFor: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("Create did not assign an ID")
	}
	if created.Status != status.PostPending {
		t.Errorf("Status: got %q, want %q", created.Status, status.PostPending)
	}
	if created.ShareID == "" {
		t.Error("Create did not assign a share ID")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ShareID != created.ShareID {
		t.Errorf("ShareID round trip: got %q, want %q", got.ShareID, created.ShareID)
	}
}

func TestCountScheduledByOwner_PendingAndReadyOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	group := primitive.NewObjectID()
	when := time.Now().Add(time.Hour)

	fixtures.CreatePost(ctx, owner, group, "a", status.PostPending, when, nil)
	fixtures.CreatePost(ctx, owner, group, "b", status.PostReady, when, nil)
	posted := time.Now()
	fixtures.CreatePost(ctx, owner, group, "c", status.PostPosted, when, &posted)
	fixtures.CreatePost(ctx, owner, group, "d", status.PostFailed, when, nil)
	fixtures.CreatePost(ctx, primitive.NewObjectID(), group, "e", status.PostPending, when, nil)

	store := poststore.New(db)
	n, err := store.CountScheduledByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("CountScheduledByOwner: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d, want 2 (pending + ready)", n)
	}
}

func TestCountPostedSince_MidnightBoundary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	group := primitive.NewObjectID()
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	fixtures.CreatePostedPost(ctx, owner, group, "on the line", midnight)
	fixtures.CreatePostedPost(ctx, owner, group, "just before", midnight.Add(-time.Second))
	fixtures.CreatePostedPost(ctx, owner, group, "after", midnight.Add(time.Minute))

	store := poststore.New(db)
	n, err := store.CountPostedSince(ctx, owner, midnight)
	if err != nil {
		t.Fatalf("CountPostedSince: %v", err)
	}
	// $gte: a post stamped exactly at midnight counts for today.
	if n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}

func TestListUpcoming_JoinsGroupAndTerritoryNames(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	terr := fixtures.CreateTerritory(ctx, "East")
	g := fixtures.CreateGroup(ctx, "Evening Crowd", owner, terr.ID)

	fixtures.CreateScheduledPost(ctx, owner, g.ID, "soon", time.Now().Add(time.Hour))

	store := poststore.New(db)
	got, err := store.ListUpcoming(ctx, owner, 3)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d posts, want 1", len(got))
	}
	if got[0].GroupName != "Evening Crowd" {
		t.Errorf("GroupName: got %q, want %q", got[0].GroupName, "Evening Crowd")
	}
	if got[0].TerritoryName != "East" {
		t.Errorf("TerritoryName: got %q, want %q", got[0].TerritoryName, "East")
	}
}

func TestListUpcoming_OrphanGroupStillListed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	// Group was deleted out from under the post; the lookup finds nothing.
	fixtures.CreateScheduledPost(ctx, owner, primitive.NewObjectID(), "orphan", time.Now().Add(time.Hour))

	store := poststore.New(db)
	got, err := store.ListUpcoming(ctx, owner, 3)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d posts, want 1", len(got))
	}
	if got[0].GroupName != "" {
		t.Errorf("GroupName: got %q, want empty for missing group", got[0].GroupName)
	}
}

func TestListUpcoming_LimitAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	group := primitive.NewObjectID()
	base := time.Now().Add(time.Hour)

	fixtures.CreateScheduledPost(ctx, owner, group, "late", base.Add(3*time.Hour))
	fixtures.CreateScheduledPost(ctx, owner, group, "early", base)
	fixtures.CreateScheduledPost(ctx, owner, group, "mid", base.Add(2*time.Hour))
	fixtures.CreateScheduledPost(ctx, owner, group, "latest", base.Add(4*time.Hour))

	store := poststore.New(db)
	got, err := store.ListUpcoming(ctx, owner, 3)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d posts, want 3", len(got))
	}
	wantContent := []string{"early", "mid", "late"}
	for i, up := range got {
		if up.Content != wantContent[i] {
			t.Errorf("got[%d].Content = %q, want %q", i, up.Content, wantContent[i])
		}
	}
}
