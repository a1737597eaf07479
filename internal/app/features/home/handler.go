package home

import (
	"net/http"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/authz"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	// Signed-in users land on their dashboard, not the marketing page.
	if _, _, _, ok := authz.UserCtx(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome"),
	}

	templates.Render(w, r, "home", data)
}
