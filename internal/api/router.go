package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/recrutas/internal/theme"
)

// Deps holds the dependencies required to build the API router.
type Deps struct {
	Preferences theme.Binder
}

// NewAPIRouter returns the chi sub-router mounted at /api/v1.
func NewAPIRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "METHOD_NOT_ALLOWED")
	})

	themes := &themeAPIHandler{prefs: deps.Preferences}
	r.Get("/theme", themes.Get)
	r.Put("/theme", themes.Put)

	return r
}
