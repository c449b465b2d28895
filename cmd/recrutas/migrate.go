package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/joestump/recrutas/internal/config"
	"github.com/joestump/recrutas/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DB.Driver == "" || cfg.DB.DSN == "" {
				return fmt.Errorf("RECRUTAS_DB_DRIVER and RECRUTAS_DB_DSN are required to migrate")
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			log.Println("migrations complete")
			return nil
		},
	}
}
