package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/joestump/recrutas/internal/theme"
)

// ThemeHandler handles the theme toggle endpoint.
type ThemeHandler struct {
	prefs theme.Binder
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(prefs theme.Binder) *ThemeHandler {
	return &ThemeHandler{prefs: prefs}
}

// Toggle handles POST /theme/toggle. It resolves the visitor's current
// preference, flips it, and persists the result. Script callers get an
// HX-Trigger header to swap the root class in place; plain form posts are
// redirected back to the landing page.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	c := theme.Mount(w, r, h.prefs)
	c.Resolve(r.Context())
	t := c.Toggle(r.Context())

	if !wantsFragment(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	trigger, _ := json.Marshal(map[string]any{
		"themeChanged": map[string]string{"theme": string(t)},
	})
	w.Header().Set("HX-Trigger", string(trigger))
	w.WriteHeader(http.StatusNoContent)
}

// wantsFragment returns true when the request came from page script rather
// than a plain form submission.
func wantsFragment(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
