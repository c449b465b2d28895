package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/joestump/recrutas/internal/build"
	"github.com/joestump/recrutas/internal/metrics"
	"github.com/joestump/recrutas/internal/theme"
	"github.com/joestump/recrutas/web"
)

// BasePage carries layout-level data available to every template. It is only
// built from a resolved controller.
type BasePage struct {
	Theme      theme.Theme
	RootClass  string
	Fallback   bool // no stored or signalled preference; the page asks the browser
	LightLabel string // caption shown while dark
	DarkLabel  string // caption shown while light
	Version    string
}

func newBasePage(c *theme.Controller) BasePage {
	return BasePage{
		Theme:      c.Preference(),
		RootClass:  c.Root().String(),
		Fallback:   c.Fallback(),
		LightLabel: theme.Dark.ToggleLabel(),
		DarkLabel:  theme.Light.ToggleLabel(),
		Version:    build.Version,
	}
}

// pageCache maps a render key (e.g. "landing.html") to a compiled template
// set containing base.html + partials + that one page file. Each page gets its
// own set so {{define "content"}} blocks don't collide.
var pageCache map[string]*template.Template

func init() {
	partials, err := fs.Glob(web.TemplateFS, "templates/partials/*.html")
	if err != nil {
		panic("glob partials: " + err.Error())
	}

	pageCache = make(map[string]*template.Template)
	err = fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").ParseFS(web.TemplateFS, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}

		rel, _ := strings.CutPrefix(p, "templates/pages/")
		pageCache[rel] = t
		if base := filepath.Base(p); base != rel {
			pageCache[base] = t
		}
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// renderThemed executes a full-page template once the controller is ready.
// An unresolved controller renders nothing at all, so no page ever goes out
// with a placeholder theme.
func renderThemed(w http.ResponseWriter, c *theme.Controller, tmpl string, data any) bool {
	if !c.Ready() {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t, ok := pageCache[tmpl]
	if !ok {
		http.Error(w, "template not found: "+tmpl, http.StatusInternalServerError)
		return false
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return false
	}
	metrics.PageRendersTotal.WithLabelValues(string(c.Preference())).Inc()
	return true
}
