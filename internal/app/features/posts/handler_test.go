package posts_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/errors"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/posts"
	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestEnv(t *testing.T) (*posts.Handler, *testutil.Fixtures, *poststore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	ps := poststore.New(db)
	gs := groupstore.New(db)
	h := posts.NewHandler(ps, gs, uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db), ps
}

func signedInRequest(method, target string, body *strings.Reader, userID primitive.ObjectID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return auth.WithTestUser(req, &auth.SessionUser{
		ID:    userID.Hex(),
		Name:  "Seller",
		Email: "seller@example.com",
		Role:  "salesperson",
	})
}

func TestServeList_AnonymousRedirects(t *testing.T) {
	h, _, _ := newTestEnv(t)

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()

	h.ServeList(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected %d, got %d", http.StatusSeeOther, rec.Code)
	}
}

func TestHandleCreate_SanitizesContent(t *testing.T) {
	h, fixtures, ps := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateSalesperson(ctx, "Seller", "seller@example.com")
	terr := fixtures.CreateTerritory(ctx, "North")
	g := fixtures.CreateGroup(ctx, "My Group", owner.ID, terr.ID)

	when := time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04")
	form := url.Values{}
	form.Set("group_id", g.ID.Hex())
	form.Set("content", `hello <script>alert("x")</script>world`)
	form.Set("scheduled_for", when)

	req := signedInRequest("POST", "/posts", strings.NewReader(form.Encode()), owner.ID)
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected %d, got %d (body: %s)", http.StatusSeeOther, rec.Code, rec.Body.String())
	}

	list, err := ps.ListByOwner(ctx, owner.ID, 10)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d posts, want 1", len(list))
	}
	if strings.Contains(list[0].Content, "<script>") {
		t.Errorf("script tag survived sanitization: %q", list[0].Content)
	}
	if !strings.Contains(list[0].Content, "hello") {
		t.Errorf("legitimate content lost: %q", list[0].Content)
	}
}

func TestHandleCreate_RejectsForeignGroup(t *testing.T) {
	h, fixtures, ps := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateSalesperson(ctx, "Seller", "seller@example.com")
	other := fixtures.CreateSalesperson(ctx, "Other", "other@example.com")
	terr := fixtures.CreateTerritory(ctx, "North")
	foreign := fixtures.CreateGroup(ctx, "Not Mine", other.ID, terr.ID)

	when := time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04")
	form := url.Values{}
	form.Set("group_id", foreign.ID.Hex())
	form.Set("content", "sneaky")
	form.Set("scheduled_for", when)

	req := signedInRequest("POST", "/posts", strings.NewReader(form.Encode()), owner.ID)
	rec := httptest.NewRecorder()

	// The rejection re-renders the form, which may panic without
	// initialized templates.
	func() {
		defer func() {
			if r := recover(); r != nil {
			}
		}()
		h.HandleCreate(rec, req)
	}()

	list, err := ps.ListByOwner(ctx, owner.ID, 10)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("post created against a group the user does not own")
	}
}

func TestHandleCreate_RejectsPastSchedule(t *testing.T) {
	h, fixtures, ps := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateSalesperson(ctx, "Seller", "seller@example.com")
	terr := fixtures.CreateTerritory(ctx, "North")
	g := fixtures.CreateGroup(ctx, "My Group", owner.ID, terr.ID)

	when := time.Now().Add(-2 * time.Hour).Format("2006-01-02T15:04")
	form := url.Values{}
	form.Set("group_id", g.ID.Hex())
	form.Set("content", "too late")
	form.Set("scheduled_for", when)

	req := signedInRequest("POST", "/posts", strings.NewReader(form.Encode()), owner.ID)
	rec := httptest.NewRecorder()

	func() {
		defer func() {
			if r := recover(); r != nil {
			}
		}()
		h.HandleCreate(rec, req)
	}()

	list, err := ps.ListByOwner(ctx, owner.ID, 10)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("post created with a past schedule time")
	}
}
