package store_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joestump/recrutas/internal/session"
	"github.com/joestump/recrutas/internal/store"
	"github.com/joestump/recrutas/internal/testutil"
	"github.com/joestump/recrutas/internal/theme"
)

func TestSessionBackend_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	sm := session.NewManager(db, "sqlite3", time.Hour, false)
	b := store.NewSessionBackend(sm)

	var got theme.Theme
	var gotOK bool
	h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := b.Bind(w, r)
		if r.Method == http.MethodPost {
			if err := s.Set(r.Context(), theme.Dark); err != nil {
				t.Errorf("Set: %v", err)
			}
			return
		}
		var err error
		got, gotOK, err = s.Get(r.Context())
		if err != nil {
			t.Errorf("Get: %v", err)
		}
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), r)

	if !gotOK || got != theme.Dark {
		t.Errorf("Get() = (%q, %v), want (dark, true)", got, gotOK)
	}
}
