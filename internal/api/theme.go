package api

import (
	"encoding/json"
	"net/http"

	"github.com/joestump/recrutas/internal/theme"
)

type themeAPIHandler struct {
	prefs theme.Binder
}

// Get godoc
// @Summary      Get theme preference
// @Description  Resolves the visitor's theme from the stored preference, the color-scheme client hint or the X-Prefers-Color-Scheme header.
// @Tags         theme
// @Produce      json
// @Success      200  {object}  ThemeResponse
// @Router       /theme [get]
func (h *themeAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	c := theme.Mount(w, r, h.prefs)
	t := c.Resolve(r.Context())
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: string(t), Source: string(c.Source())})
}

// Put godoc
// @Summary      Set theme preference
// @Description  Records an explicit light or dark choice for the visitor.
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body      SetThemeRequest  true  "Theme to persist"
// @Success      200   {object}  ThemeResponse
// @Failure      400   {object}  errorBody
// @Router       /theme [put]
func (h *themeAPIHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	t, err := theme.Parse(req.Theme)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_THEME")
		return
	}

	c := theme.Mount(w, r, h.prefs)
	c.Resolve(r.Context())
	t, err = c.Set(r.Context(), t)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_THEME")
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: string(t), Source: string(c.Source())})
}
