package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/users"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/authz"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_NormalizesAndRoundTrips(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	created, err := store.Create(ctx, models.User{
		FullName: "  Terry Lancaster  ",
		Email:    "Terry@Example.COM",
		Role:     "Salesperson",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.EmailCI != "terry@example.com" {
		t.Errorf("EmailCI: got %q", created.EmailCI)
	}
	if created.Role != authz.RoleSalesperson {
		t.Errorf("Role: got %q, want %q", created.Role, authz.RoleSalesperson)
	}

	// Lookup is by the case-insensitive form.
	got, err := store.GetByEmail(ctx, "TERRY@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByEmail returned wrong user")
	}
}

func TestCreate_DuplicateEmailRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}

	if _, err := store.Create(ctx, models.User{FullName: "A", Email: "dup@example.com", Role: "manager"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := store.Create(ctx, models.User{FullName: "B", Email: "DUP@example.com", Role: "manager"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestProfile_ProjectsDashboardFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateSalesperson(ctx, "Profile Person", "pp@example.com")

	store := userstore.New(db)
	got, err := store.Profile(ctx, u.ID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got.FullName != "Profile Person" || got.Email != "pp@example.com" || got.Role != authz.RoleSalesperson {
		t.Errorf("Profile: got %+v", got)
	}
}

func TestProfile_MissingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	_, err := store.Profile(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("got %v, want mongo.ErrNoDocuments", err)
	}
}

func TestFetcher_FailClosed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateSalesperson(ctx, "Live User", "live@example.com")

	fetcher := userstore.NewFetcher(db)
	if su := fetcher.FetchUser(ctx, u.ID.Hex()); su == nil {
		t.Error("expected session user for active account")
	} else if su.Role != authz.RoleSalesperson {
		t.Errorf("Role: got %q", su.Role)
	}

	if su := fetcher.FetchUser(ctx, "not-a-hex-id"); su != nil {
		t.Error("expected nil for malformed ID")
	}
	if su := fetcher.FetchUser(ctx, primitive.NewObjectID().Hex()); su != nil {
		t.Error("expected nil for unknown user")
	}
}
