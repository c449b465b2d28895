package store

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/recrutas/internal/theme"
)

// SessionBackend keeps the preference in the visitor's server-side session.
// The router must wrap handlers with SessionManager.LoadAndSave, and callers
// pass the request context to Get and Set.
type SessionBackend struct {
	sm *scs.SessionManager
}

func NewSessionBackend(sm *scs.SessionManager) *SessionBackend {
	return &SessionBackend{sm: sm}
}

func (b *SessionBackend) Bind(http.ResponseWriter, *http.Request) theme.Store {
	return &sessionStore{sm: b.sm}
}

type sessionStore struct {
	sm *scs.SessionManager
}

func (s *sessionStore) Get(ctx context.Context) (theme.Theme, bool, error) {
	t, ok := theme.FromStored(s.sm.GetString(ctx, theme.StorageKey))
	return t, ok, nil
}

func (s *sessionStore) Set(ctx context.Context, t theme.Theme) error {
	s.sm.Put(ctx, theme.StorageKey, string(t))
	return nil
}
