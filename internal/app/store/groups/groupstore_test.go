package groupstore_test

import (
	"testing"

	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/status"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_DefaultsToActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := groupstore.New(db)
	created, err := store.Create(ctx, models.Group{
		Name:        "Morning Commuters",
		OwnerID:     primitive.NewObjectID(),
		TerritoryID: primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != status.Active {
		t.Errorf("Status: got %q, want %q", created.Status, status.Active)
	}
	if created.NameCI != "morning commuters" {
		t.Errorf("NameCI: got %q, want folded name", created.NameCI)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Morning Commuters" {
		t.Errorf("Name: got %q", got.Name)
	}
}

func TestCountActiveByOwner_SkipsArchivedAndOthers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	terr := primitive.NewObjectID()

	fixtures.CreateGroup(ctx, "A", owner, terr)
	fixtures.CreateGroup(ctx, "B", owner, terr)
	fixtures.CreateGroupWithStatus(ctx, "C", owner, terr, status.Archived)
	fixtures.CreateGroup(ctx, "D", primitive.NewObjectID(), terr)

	store := groupstore.New(db)
	n, err := store.CountActiveByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("CountActiveByOwner: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}

func TestUpdateInfo_ArchiveThenDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	g := fixtures.CreateGroup(ctx, "Short Lived", owner, primitive.NewObjectID())

	store := groupstore.New(db)
	if err := store.UpdateInfo(ctx, g.ID, "Short Lived", "winding down", status.Archived); err != nil {
		t.Fatalf("UpdateInfo: %v", err)
	}

	active, err := store.ListActiveByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListActiveByOwner: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("archived group still listed as active")
	}

	all, err := store.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("ListByOwner: got %d, want 1", len(all))
	}

	deleted, err := store.Delete(ctx, g.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Delete: got %d, want 1", deleted)
	}
}
