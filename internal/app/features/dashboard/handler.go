// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	dashstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/dash"
	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/timeouts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Dash *dashstore.Store
	Log  *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Dash: dashstore.New(db),
		Log:  logger,
	}
}

type dashboardData struct {
	viewdata.BaseVM
	DisplayName    string
	ScheduledPosts int64
	ActiveGroups   int64
	Territories    int64
	PostedToday    int64
	Upcoming       []poststore.UpcomingPost
}

// ServeDashboard handles GET /dashboard.
//
// Anonymous visitors are sent to the login page; everyone else gets
// the stats view, which degrades to zeros rather than erroring when
// the database misbehaves.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok || u == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		h.Log.Warn("dashboard: malformed session user ID", zap.String("id", u.ID))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	sum := h.Dash.Fetch(ctx, h.Log, dashstore.Identity{
		UserID: userID,
		Email:  u.Email,
	})

	data := dashboardData{
		BaseVM:         viewdata.NewBaseVM(r, "Dashboard"),
		DisplayName:    sum.DisplayName,
		ScheduledPosts: sum.Stats.ScheduledPosts,
		ActiveGroups:   sum.Stats.ActiveGroups,
		Territories:    sum.Stats.Territories,
		PostedToday:    sum.Stats.PostedToday,
		Upcoming:       sum.Upcoming,
	}

	templates.Render(w, r, "dashboard", data)
}
