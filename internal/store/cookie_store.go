package store

import (
	"context"
	"net/http"
	"time"

	"github.com/joestump/recrutas/internal/theme"
)

// CookieBackend persists the preference in a browser cookie. The cookie is
// not HttpOnly so the page script can read it when toggling in place.
type CookieBackend struct {
	Name   string
	MaxAge time.Duration
	// Secure marks the cookie Secure on requests that arrived over HTTPS.
	// Plain-HTTP requests always get a non-Secure cookie, which browsers
	// would otherwise drop.
	Secure bool
}

// NewCookieBackend returns a CookieBackend using the "theme" cookie.
func NewCookieBackend(maxAge time.Duration, secure bool) *CookieBackend {
	return &CookieBackend{Name: theme.StorageKey, MaxAge: maxAge, Secure: secure}
}

func (b *CookieBackend) Bind(w http.ResponseWriter, r *http.Request) theme.Store {
	return &cookieStore{b: b, w: w, r: r}
}

type cookieStore struct {
	b *CookieBackend
	w http.ResponseWriter
	r *http.Request
}

func (s *cookieStore) Get(_ context.Context) (theme.Theme, bool, error) {
	c, err := s.r.Cookie(s.b.Name)
	if err != nil {
		return "", false, nil
	}
	t, ok := theme.FromStored(c.Value)
	return t, ok, nil
}

func (s *cookieStore) Set(_ context.Context, t theme.Theme) error {
	setCookie(s.w, &http.Cookie{
		Name:     s.b.Name,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(s.b.MaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.b.Secure && secureRequest(s.r),
		HttpOnly: false,
	})
	return nil
}
