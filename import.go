package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fertilewaif/vehicle-rentals/importer"
	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var vendor string

	cmd := &cobra.Command{
		Use:       "import (vendors|vehicles|towns) FILE",
		Short:     "Import a .csv or .xlsx file and print the report",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{models.KindVendors, models.KindVehicles, models.KindTowns},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path := args[0], args[1]

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			table, err := importer.Parse(path, f)
			if err != nil {
				return err
			}

			cfg, err := setup()
			if err != nil {
				return err
			}
			db, err := openDB(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			im := importer.New(&models.Vendors{DB: db}, &models.Vehicles{DB: db}, &models.Towns{DB: db})

			var result *models.ImportResult
			switch kind {
			case models.KindVendors:
				result, err = im.ImportVendors(table)
			case models.KindVehicles:
				result, err = im.ImportVehicles(table, vendor)
			case models.KindTowns:
				result, err = im.ImportTowns(table)
			default:
				return fmt.Errorf("unknown import kind %q", kind)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor id or slug for rows without a vendor column")
	return cmd
}
