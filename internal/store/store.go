// Package store provides the persisted theme preference backends. Each
// backend is a theme.Binder that hands a page mount its own theme.Store.
package store

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// secureRequest reports whether r reached us over HTTPS, directly or through
// a TLS-terminating proxy.
func secureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// setCookie replaces any cookie of the same name already queued on w, so a
// response never carries two values for one cookie.
func setCookie(w http.ResponseWriter, c *http.Cookie) {
	h := w.Header()
	kept := h.Values("Set-Cookie")[:0:0]
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, c.Name+"=") {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
	http.SetCookie(w, c)
}
