package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/joestump/recrutas/internal/config"
	"github.com/joestump/recrutas/internal/db"
	"github.com/joestump/recrutas/internal/handler"
	"github.com/joestump/recrutas/internal/session"
	"github.com/joestump/recrutas/internal/store"
	"github.com/joestump/recrutas/internal/theme"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var database *sqlx.DB
			if cfg.NeedsDB() {
				database, err = db.New(cfg.DB.Driver, cfg.DB.DSN)
				if err != nil {
					return err
				}
				defer func() { _ = database.Close() }()

				if err := db.Migrate(database, cfg.DB.Driver); err != nil {
					return err
				}
			}

			deps, err := buildDeps(cfg, database)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           handler.NewRouter(deps),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on %s (theme store: %s)", cfg.HTTP.Addr, cfg.Theme.Store)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Println("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

// buildDeps selects the preference backend named by theme.store.
func buildDeps(cfg *config.Config, database *sqlx.DB) (handler.Deps, error) {
	secure := !cfg.InsecureCookies

	var (
		sm    *scs.SessionManager
		prefs theme.Binder
	)
	switch cfg.Theme.Store {
	case config.StoreCookie:
		prefs = store.NewCookieBackend(cfg.Theme.CookieMaxAge, secure)
	case config.StoreSession:
		sm = session.NewManager(database, cfg.DB.Driver, cfg.SessionLifetime, secure)
		prefs = store.NewSessionBackend(sm)
	case config.StoreSQL:
		prefs = store.NewSQLBackend(store.NewPreferenceStore(database, cfg.DB.Driver), cfg.Theme.CookieMaxAge, secure)
	default:
		return handler.Deps{}, fmt.Errorf("unknown theme store %q", cfg.Theme.Store)
	}

	return handler.Deps{SessionManager: sm, Preferences: prefs}, nil
}
