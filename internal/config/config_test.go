package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	if err != nil {
		t.Fatalf("fromViper: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Theme.Store != StoreCookie {
		t.Errorf("store = %q, want cookie", cfg.Theme.Store)
	}
	if cfg.Theme.CookieMaxAge != 365*24*time.Hour {
		t.Errorf("cookie max age = %v, want 8760h", cfg.Theme.CookieMaxAge)
	}
	if cfg.NeedsDB() {
		t.Error("cookie store should not need a database")
	}
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr string
	}{
		{"unknown store", map[string]any{"theme.store": "redis"}, "RECRUTAS_THEME_STORE"},
		{"sql without driver", map[string]any{"theme.store": "sql", "db.dsn": "x.db"}, "RECRUTAS_DB_DRIVER"},
		{"session without dsn", map[string]any{"theme.store": "session", "db.driver": "sqlite3"}, "RECRUTAS_DB_DSN"},
		{"bad lifetime", map[string]any{"session.lifetime": "forever"}, "RECRUTAS_SESSION_LIFETIME"},
		{"bad max age", map[string]any{"theme.cookie_max_age": "1y"}, "RECRUTAS_THEME_COOKIE_MAX_AGE"},
		{"sql ok", map[string]any{"theme.store": "SQL", "db.driver": "sqlite3", "db.dsn": "x.db"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			cfg, err := fromViper(v)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !cfg.NeedsDB() {
					t.Error("expected NeedsDB for sql store")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("RECRUTAS_HTTP_ADDR", ":9090")
	t.Setenv("RECRUTAS_THEME_STORE", "session")
	t.Setenv("RECRUTAS_DB_DRIVER", "sqlite3")
	t.Setenv("RECRUTAS_DB_DSN", "recrutas.db")
	t.Setenv("RECRUTAS_INSECURE_COOKIES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Theme.Store != StoreSession || !cfg.InsecureCookies {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
