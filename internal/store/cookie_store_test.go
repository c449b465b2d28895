package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joestump/recrutas/internal/store"
	"github.com/joestump/recrutas/internal/theme"
)

func TestCookieBackend_Get(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		want   theme.Theme
		wantOK bool
	}{
		{"absent", "", "", false},
		{"dark", "dark", theme.Dark, true},
		{"light", "light", theme.Light, true},
		{"unrecognised value reads as light", "purple", theme.Light, true},
	}
	b := store.NewCookieBackend(365*24*time.Hour, false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "theme", Value: tt.cookie})
			}
			got, ok, err := b.Bind(httptest.NewRecorder(), r).Get(context.Background())
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Get() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCookieBackend_Set(t *testing.T) {
	b := store.NewCookieBackend(time.Hour, true)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")

	if err := b.Bind(w, r).Set(context.Background(), theme.Dark); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "theme" || c.Value != "dark" {
		t.Errorf("cookie = %s=%s, want theme=dark", c.Name, c.Value)
	}
	if c.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", c.MaxAge)
	}
	if c.HttpOnly {
		t.Error("theme cookie must be readable by the page script")
	}
	if !c.Secure {
		t.Error("expected Secure cookie")
	}
}

func TestCookieBackend_PlainHTTPIsNotSecure(t *testing.T) {
	b := store.NewCookieBackend(time.Hour, true)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/", nil)

	if err := b.Bind(w, r).Set(context.Background(), theme.Dark); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Secure {
		t.Error("cookie set over plain HTTP must not be Secure")
	}
}

func TestCookieBackend_SetReplacesEarlierCookie(t *testing.T) {
	b := store.NewCookieBackend(time.Hour, false)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	w.Header().Add("Set-Cookie", "other=1; Path=/")

	s := b.Bind(w, r)
	if err := s.Set(context.Background(), theme.Light); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(context.Background(), theme.Dark); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var themes []string
	var others int
	for _, c := range w.Result().Cookies() {
		switch c.Name {
		case "theme":
			themes = append(themes, c.Value)
		case "other":
			others++
		}
	}
	if len(themes) != 1 || themes[0] != "dark" {
		t.Errorf("theme cookies = %v, want [dark]", themes)
	}
	if others != 1 {
		t.Errorf("unrelated cookie count = %d, want 1", others)
	}
}
