package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Imports   *ImportsController
	Vehicles  *VehiclesController
	Vendors   *VendorsController
	Templates *TemplatesController
	Seo       *SeoController
	Health    *HealthController
}

// NewRouter wires public routes and the /admin subtree; admin middlewares
// apply to /admin only.
func NewRouter(h Handlers, admin ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.Health.Check).Methods(http.MethodGet)
	r.HandleFunc("/vehicles", h.Vehicles.Search).Methods(http.MethodGet)
	r.HandleFunc("/seo/resolve", h.Seo.Resolve).Methods(http.MethodGet)

	a := r.PathPrefix("/admin").Subrouter()
	a.Use(admin...)
	a.HandleFunc("/imports/vendors", h.Imports.ImportVendors).Methods(http.MethodPost)
	a.HandleFunc("/imports/vehicles", h.Imports.ImportVehicles).Methods(http.MethodPost)
	a.HandleFunc("/imports/towns", h.Imports.ImportTowns).Methods(http.MethodPost)
	a.HandleFunc("/vendors", h.Vendors.List).Methods(http.MethodGet)
	a.HandleFunc("/templates", h.Templates.List).Methods(http.MethodGet)
	a.HandleFunc("/templates/{name}", h.Templates.Put).Methods(http.MethodPut)
	a.HandleFunc("/templates/{name}/preview", h.Templates.Preview).Methods(http.MethodPost)

	return r
}
