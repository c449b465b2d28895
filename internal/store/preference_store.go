package store

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/recrutas/internal/theme"
)

// ProfileCookie identifies a device profile for the SQL-backed store.
const ProfileCookie = "recrutas_profile"

// Preference is one row of theme_preferences.
type Preference struct {
	ProfileID string    `db:"profile_id"`
	Theme     string    `db:"theme"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PreferenceStore reads and writes theme_preferences rows.
type PreferenceStore struct {
	db     *sqlx.DB
	driver string
}

func NewPreferenceStore(db *sqlx.DB, driver string) *PreferenceStore {
	return &PreferenceStore{db: db, driver: driver}
}

// Get returns the preference for profileID, or ErrNotFound.
func (s *PreferenceStore) Get(ctx context.Context, profileID string) (*Preference, error) {
	var p Preference
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`SELECT * FROM theme_preferences WHERE profile_id = ?`), profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Put creates or replaces the preference for profileID.
func (s *PreferenceStore) Put(ctx context.Context, profileID string, t theme.Theme) error {
	now := time.Now().UTC()
	q := `
		INSERT INTO theme_preferences (profile_id, theme, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (profile_id) DO UPDATE SET
			theme = excluded.theme,
			updated_at = excluded.updated_at`
	if s.driver == "mysql" {
		q = `
		INSERT INTO theme_preferences (profile_id, theme, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE theme = VALUES(theme), updated_at = VALUES(updated_at)`
	}
	_, err := s.db.ExecContext(ctx, s.db.Rebind(q), profileID, string(t), now, now)
	return err
}

// SQLBackend binds PreferenceStore rows to the device profile cookie, minting
// a new profile id on the first write.
type SQLBackend struct {
	prefs  *PreferenceStore
	maxAge time.Duration
	secure bool
}

func NewSQLBackend(prefs *PreferenceStore, maxAge time.Duration, secure bool) *SQLBackend {
	return &SQLBackend{prefs: prefs, maxAge: maxAge, secure: secure}
}

func (b *SQLBackend) Bind(w http.ResponseWriter, r *http.Request) theme.Store {
	s := &sqlStore{b: b, w: w, r: r}
	if c, err := r.Cookie(ProfileCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			s.profileID = c.Value
		}
	}
	return s
}

type sqlStore struct {
	b         *SQLBackend
	w         http.ResponseWriter
	r         *http.Request
	profileID string
}

func (s *sqlStore) Get(ctx context.Context) (theme.Theme, bool, error) {
	if s.profileID == "" {
		return "", false, nil
	}
	p, err := s.b.prefs.Get(ctx, s.profileID)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	t, ok := theme.FromStored(p.Theme)
	return t, ok, nil
}

func (s *sqlStore) Set(ctx context.Context, t theme.Theme) error {
	if s.profileID == "" {
		s.profileID = uuid.New().String()
		setCookie(s.w, &http.Cookie{
			Name:     ProfileCookie,
			Value:    s.profileID,
			Path:     "/",
			MaxAge:   int(s.b.maxAge / time.Second),
			SameSite: http.SameSiteLaxMode,
			Secure:   s.b.secure && secureRequest(s.r),
			HttpOnly: true,
		})
	}
	return s.b.prefs.Put(ctx, s.profileID, t)
}
