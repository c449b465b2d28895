package handler

import (
	"net/http"
	"time"

	"github.com/joestump/recrutas/internal/metrics"
	"github.com/joestump/recrutas/internal/theme"
)

// Feature is one card in the landing page's feature grid.
type Feature struct {
	Title string
	Body  string
}

var landingFeatures = []Feature{
	{"⚡ AI-Powered Screening", "Automated evaluations ensure top talent rises to the top."},
	{"🛡️ Anonymous Interviews", "Reduce bias with face-hidden, skill-based interviews."},
	{"🔔 Real-Time Updates", "Get notified at every step—no ghosting, no waiting."},
}

// LandingPage is the data for landing.html.
type LandingPage struct {
	BasePage
	Features []Feature
}

// LandingHandler serves the public landing page.
type LandingHandler struct {
	prefs theme.Binder
}

// NewLandingHandler creates a new LandingHandler.
func NewLandingHandler(prefs theme.Binder) *LandingHandler {
	return &LandingHandler{prefs: prefs}
}

// Index serves GET /. The theme is resolved before anything is written, so
// the first byte of the page already carries the final root class.
func (h *LandingHandler) Index(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	c := theme.Mount(w, r, h.prefs)
	c.Resolve(r.Context())

	w.Header().Add("Vary", "Cookie")
	w.Header().Set("Cache-Control", "private, no-cache")
	if renderThemed(w, c, "landing.html", LandingPage{
		BasePage: newBasePage(c),
		Features: landingFeatures,
	}) {
		metrics.RenderDuration.Observe(time.Since(start).Seconds())
	}
}
