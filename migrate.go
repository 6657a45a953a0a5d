package main

import (
	"github.com/fertilewaif/vehicle-rentals/models"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			db, err := openDB(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := models.Migrate(db); err != nil {
				return err
			}
			log.Infoln("Schema is up to date")
			return nil
		},
	}
}
