package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Preference store backends accepted by theme.store.
const (
	StoreCookie  = "cookie"
	StoreSession = "session"
	StoreSQL     = "sql"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Theme struct {
		Store        string
		CookieMaxAge time.Duration
	}
	SessionLifetime time.Duration
	// InsecureCookies disables the Secure flag. The cookie and sql stores
	// already drop it on plain-HTTP requests; the session store's cookie is
	// fixed at startup, so serving it over plain HTTP needs this set.
	InsecureCookies bool
}

// NeedsDB reports whether the configured preference store is database-backed.
func (c *Config) NeedsDB() bool {
	return c.Theme.Store == StoreSession || c.Theme.Store == StoreSQL
}

// Load reads config from environment (RECRUTAS_ prefix) and optional recrutas.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RECRUTAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("recrutas")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("theme.store", StoreCookie)
	v.SetDefault("theme.cookie_max_age", "8760h")
	v.SetDefault("session.lifetime", "720h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Theme.Store = strings.ToLower(v.GetString("theme.store"))
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	maxAge, err := time.ParseDuration(v.GetString("theme.cookie_max_age"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECRUTAS_THEME_COOKIE_MAX_AGE: %w", err)
	}
	cfg.Theme.CookieMaxAge = maxAge

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECRUTAS_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	switch cfg.Theme.Store {
	case StoreCookie, StoreSession, StoreSQL:
	default:
		return nil, fmt.Errorf("RECRUTAS_THEME_STORE must be cookie, session, or sql (got %q)", cfg.Theme.Store)
	}

	if cfg.NeedsDB() {
		if cfg.DB.Driver == "" {
			return nil, fmt.Errorf("RECRUTAS_DB_DRIVER is required for the %s store (sqlite3, mysql, postgres)", cfg.Theme.Store)
		}
		if cfg.DB.DSN == "" {
			return nil, fmt.Errorf("RECRUTAS_DB_DSN is required for the %s store", cfg.Theme.Store)
		}
	}

	return cfg, nil
}
