// internal/app/features/posts/handler.go
package posts

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/errors"
	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/htmlsanitize"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/timeouts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/viewdata"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// listLimit caps the "my posts" page; there is no pagination yet.
const listLimit = 100

type Handler struct {
	Posts  *poststore.Store
	Groups *groupstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(posts *poststore.Store, groups *groupstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:  posts,
		Groups: groups,
		Log:    logger,
		ErrLog: errLog,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type listData struct {
	viewdata.BaseVM
	Posts []models.Post
}

type formData struct {
	viewdata.BaseVM
	Error   string
	Content string
	Groups  []models.Group
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /posts – my posts                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Posts.ListByOwner(ctx, userID, listLimit)
	if err != nil {
		h.ErrLog.Internal(w, r, "We couldn't load your posts.", err)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "My Posts"),
		Posts:  list,
	}
	templates.Render(w, r, "posts_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /posts/new – compose form                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "", "")
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, errMsg, content string) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	groups, err := h.Groups.ListActiveByOwner(ctx, userID)
	if err != nil {
		h.ErrLog.Internal(w, r, "We couldn't load your groups.", err)
		return
	}

	data := formData{
		BaseVM:  viewdata.NewBaseVM(r, "New Post"),
		Error:   errMsg,
		Content: content,
		Groups:  groups,
	}
	templates.Render(w, r, "posts_new", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /posts – create                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.BadRequest(w, r, "Could not read the post form.", err)
		return
	}

	content := htmlsanitize.Sanitize(r.PostFormValue("content"))
	if content == "" {
		h.renderForm(w, r, "Post content is required.", "")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(r.PostFormValue("group_id"))
	if err != nil {
		h.renderForm(w, r, "Pick a group for this post.", content)
		return
	}

	scheduledFor, err := time.ParseInLocation("2006-01-02T15:04", r.PostFormValue("scheduled_for"), time.Local)
	if err != nil {
		h.renderForm(w, r, "Enter a valid date and time.", content)
		return
	}
	if scheduledFor.Before(time.Now()) {
		h.renderForm(w, r, "The scheduled time must be in the future.", content)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The target group must exist and belong to the poster.
	g, err := h.Groups.GetByID(ctx, groupID)
	if err != nil || g.OwnerID != userID {
		h.renderForm(w, r, "That group isn't available.", content)
		return
	}

	created, err := h.Posts.Create(ctx, models.Post{
		OwnerID:      userID,
		GroupID:      groupID,
		Content:      content,
		ScheduledFor: scheduledFor,
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "We couldn't save your post.", err)
		return
	}

	h.Log.Info("post scheduled",
		zap.String("post_id", created.ID.Hex()),
		zap.Time("scheduled_for", scheduledFor))

	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// sessionUserID pulls the signed-in user's ObjectID out of the request.
func sessionUserID(r *http.Request) (primitive.ObjectID, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok || u == nil {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
