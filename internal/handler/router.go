package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/recrutas/docs/swagger"
	"github.com/joestump/recrutas/internal/api"
	"github.com/joestump/recrutas/internal/build"
	"github.com/joestump/recrutas/internal/theme"
	"github.com/joestump/recrutas/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	// SessionManager is set only when preferences live in server-side sessions.
	SessionManager *scs.SessionManager
	Preferences    theme.Binder
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css and js/theme.js directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok " + build.Version + "\n"))
	})

	// Everything below may read or write the persisted preference.
	r.Group(func(r chi.Router) {
		if deps.SessionManager != nil {
			r.Use(deps.SessionManager.LoadAndSave)
		}

		landing := NewLandingHandler(deps.Preferences)
		r.Get("/", landing.Index)

		themeHandler := NewThemeHandler(deps.Preferences)
		r.Post("/theme/toggle", themeHandler.Toggle)

		r.Mount("/api/v1", api.NewAPIRouter(api.Deps{Preferences: deps.Preferences}))
	})

	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	return r
}
