// internal/app/features/groups/handler.go
package groups

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/errors"
	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	territorystore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/territories"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/htmlsanitize"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/normalize"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/status"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/timeouts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/viewdata"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Handler struct {
	Groups      *groupstore.Store
	Territories *territorystore.Store
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
}

func NewHandler(groups *groupstore.Store, territories *territorystore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:      groups,
		Territories: territories,
		Log:         logger,
		ErrLog:      errLog,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type listData struct {
	viewdata.BaseVM
	Groups []models.Group
}

type formData struct {
	viewdata.BaseVM
	Error       string
	Name        string
	Description string
	Territories []models.Territory
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /groups – my groups                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Groups.ListByOwner(ctx, userID)
	if err != nil {
		h.ErrLog.Internal(w, r, "We couldn't load your groups.", err)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "My Groups"),
		Groups: list,
	}
	templates.Render(w, r, "groups_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /groups/new – create form                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "", "", "")
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, errMsg, name, desc string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	territories, err := h.Territories.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "We couldn't load the territory list.", err)
		return
	}

	data := formData{
		BaseVM:      viewdata.NewBaseVM(r, "New Group"),
		Error:       errMsg,
		Name:        name,
		Description: desc,
		Territories: territories,
	}
	templates.Render(w, r, "groups_new", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups – create                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.BadRequest(w, r, "Could not read the group form.", err)
		return
	}

	name := normalize.Name(r.PostFormValue("name"))
	desc := htmlsanitize.StripTags(r.PostFormValue("description"))
	if name == "" {
		h.renderForm(w, r, "Group name is required.", name, desc)
		return
	}

	territoryID, err := primitive.ObjectIDFromHex(r.PostFormValue("territory_id"))
	if err != nil {
		h.renderForm(w, r, "Pick a territory for this group.", name, desc)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Territories.GetByID(ctx, territoryID); err != nil {
		h.renderForm(w, r, "That territory isn't available.", name, desc)
		return
	}

	created, err := h.Groups.Create(ctx, models.Group{
		Name:        name,
		Description: desc,
		OwnerID:     userID,
		TerritoryID: territoryID,
	})
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateGroupName) {
			h.renderForm(w, r, "You already have a group with that name.", name, desc)
			return
		}
		h.ErrLog.Internal(w, r, "We couldn't create the group.", err)
		return
	}

	h.Log.Info("group created", zap.String("group_id", created.ID.Hex()))

	http.Redirect(w, r, "/groups", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups/{id}/archive                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.BadRequest(w, r, "Unknown group.", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err != nil || g.OwnerID != userID {
		uierrors.RenderForbidden(w, r, "You can only archive your own groups.", "/groups")
		return
	}

	if err := h.Groups.UpdateInfo(ctx, id, g.Name, g.Description, status.Archived); err != nil {
		h.ErrLog.Internal(w, r, "We couldn't archive the group.", err)
		return
	}

	http.Redirect(w, r, "/groups", http.StatusSeeOther)
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
