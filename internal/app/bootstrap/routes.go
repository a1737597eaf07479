// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authgooglefeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/authgoogle"
	dashboardfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/dashboard"
	errorsfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/errors"
	groupsfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/groups"
	healthfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/health"
	homefeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/home"
	loginfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/login"
	logoutfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/logout"
	postsfeature "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/posts"
	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	territorystore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/territories"
	userstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/users"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	// Feature view registrations (template sets load via init).
	_ "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/dashboard/views"
	_ "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/groups/views"
	_ "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/home/views"
	_ "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/login/views"
	_ "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/posts/views"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The scheduler initializes the template
// engine, applies session middleware, and mounts feature routers for the
// landing page, auth, dashboard, posts, and groups.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on each request.
	// This ensures role changes and disabled accounts take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Shared stores.
	posts := poststore.New(deps.MongoDatabase)
	groups := groupstore.New(deps.MongoDatabase)
	territories := territorystore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		templates.Render(w, req, "error_notfound", nil)
	})

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog,
		[]byte(appCfg.SessionKey), googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	googleHandler := authgooglefeature.NewHandler(deps.MongoDatabase, sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Dashboard
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Post scheduling
	postsHandler := postsfeature.NewHandler(posts, groups, errLog, logger)
	r.Mount("/posts", postsfeature.Routes(postsHandler, sessionMgr))

	// Group management
	groupsHandler := groupsfeature.NewHandler(groups, territories, errLog, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler, sessionMgr))

	return r, nil
}
