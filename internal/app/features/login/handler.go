// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"time"

	uierrors "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/errors"
	userstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/users"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/normalize"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/ratelimit"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/status"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/timeouts"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	nonceCookie = "login_nonce"
	nonceMaxAge = 15 * time.Minute

	// maxAttempts failed logins per email+IP within attemptWindow
	// before we start refusing.
	maxAttempts   = 5
	attemptWindow = 10 * time.Minute
)

type Handler struct {
	Log           *zap.Logger
	SessionMgr    *auth.SessionManager
	ErrLog        *uierrors.ErrorLogger
	Users         *userstore.Store
	Limiter       *ratelimit.Limiter
	GoogleEnabled bool

	nonce *securecookie.SecureCookie
}

func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	sessionKey []byte,
	googleEnabled bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:           logger,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		Users:         userstore.New(db),
		Limiter:       ratelimit.New(maxAttempts, attemptWindow),
		GoogleEnabled: googleEnabled,
		nonce:         securecookie.New(sessionKey, nil),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error         string
	Email         string
	Nonce         string
	ReturnURL     string
	GoogleEnabled bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login – form                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	// Already signed in? Go straight to the dashboard.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ret := query.Get(r, "return")
	h.renderForm(w, r, "", "", ret)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, errMsg, email, returnURL string) {
	nonce := uuid.NewString()
	if encoded, err := h.nonce.Encode(nonceCookie, nonce); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     nonceCookie,
			Value:    encoded,
			Path:     "/login",
			MaxAge:   int(nonceMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	} else {
		h.Log.Error("login: encode nonce cookie", zap.Error(err))
	}

	data := loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in"),
		Error:         errMsg,
		Email:         email,
		Nonce:         nonce,
		ReturnURL:     returnURL,
		GoogleEnabled: h.GoogleEnabled,
	}
	templates.Render(w, r, "login", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login – credentials                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.BadRequest(w, r, "Could not read the sign-in form.", err)
		return
	}

	email := normalize.Email(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	ret := r.PostFormValue("return")

	if !h.validNonce(r) {
		h.renderForm(w, r, "Your sign-in form expired. Please try again.", email, ret)
		return
	}
	if email == "" || password == "" {
		h.renderForm(w, r, "Email and password are required.", email, ret)
		return
	}

	key := email + "|" + ratelimit.ClientIP(r)
	if !h.Limiter.Allow(key) {
		h.Log.Warn("login: rate limited", zap.String("email", email))
		h.renderForm(w, r, "Too many attempts. Please wait a few minutes and try again.", email, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.renderForm(w, r, "Incorrect email or password.", email, ret)
			return
		}
		h.ErrLog.Internal(w, r, "We couldn't sign you in right now.", err)
		return
	}

	if u.AuthMethod == "google" {
		h.renderForm(w, r, "This account signs in with Google. Use the Google button below.", email, ret)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		h.renderForm(w, r, "Incorrect email or password.", email, ret)
		return
	}
	if u.Status != status.Active {
		h.renderForm(w, r, "This account is disabled. Contact an administrator.", email, ret)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		h.ErrLog.Internal(w, r, "Unable to create a session. Please try again.", err)
		return
	}

	h.Limiter.Reset(key)
	h.Log.Info("login: success", zap.String("user_id", u.ID.Hex()))

	dest := urlutil.SafeReturn(ret, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// validNonce checks the hidden form field against the signed cookie
// issued with the form. Blocks cross-site form posts.
func (h *Handler) validNonce(r *http.Request) bool {
	c, err := r.Cookie(nonceCookie)
	if err != nil {
		return false
	}
	var want string
	if err := h.nonce.Decode(nonceCookie, c.Value, &want); err != nil {
		return false
	}
	return want != "" && want == r.PostFormValue("nonce")
}
