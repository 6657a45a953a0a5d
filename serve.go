package main

import (
	"net/http"
	"time"

	"github.com/fertilewaif/vehicle-rentals/auth"
	"github.com/fertilewaif/vehicle-rentals/controllers"
	"github.com/fertilewaif/vehicle-rentals/importer"
	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/fertilewaif/vehicle-rentals/seo"
	"github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			db, err := openDB(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			vendors := &models.Vendors{DB: db}
			vehicles := &models.Vehicles{DB: db}
			towns := &models.Towns{DB: db}
			im := importer.New(vendors, vehicles, towns)

			router := controllers.NewRouter(controllers.Handlers{
				Imports:   controllers.NewImportsController(im, cfg.MaxUploadBytes()),
				Vehicles:  controllers.NewVehiclesController(vehicles),
				Vendors:   controllers.NewVendorsController(vendors),
				Templates: controllers.NewTemplatesController(&models.Templates{DB: db}),
				Seo:       controllers.NewSeoController(seo.NewResolver(towns)),
				Health:    &controllers.HealthController{DB: db},
			},
				auth.RateLimit(rate.Limit(cfg.AdminRateLimit), cfg.AdminRateBurst),
				auth.Middleware([]byte(cfg.JWTSecret)),
			)

			accessLog := log.StandardLogger().Writer()
			defer accessLog.Close()

			var handler http.Handler = router
			handler = handlers.CombinedLoggingHandler(accessLog, handler)
			handler = handlers.RecoveryHandler(
				handlers.RecoveryLogger(log.StandardLogger()),
				handlers.PrintRecoveryStack(true),
			)(handler)

			srv := &http.Server{
				Addr:              cfg.HTTPAddr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			log.WithFields(log.Fields{"addr": cfg.HTTPAddr}).Infoln("Listening")
			return srv.ListenAndServe()
		},
	}
}
