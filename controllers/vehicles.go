package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fertilewaif/vehicle-rentals/models"
	log "github.com/sirupsen/logrus"
)

type VehicleFinder interface {
	FindByFilter(filter models.VehicleFilter) ([]models.Vehicle, error)
}

type VehiclesController struct {
	Vehicles VehicleFinder
}

func NewVehiclesController(vehicles VehicleFinder) *VehiclesController {
	return &VehiclesController{Vehicles: vehicles}
}

// Search serves the public listing search.
func (c *VehiclesController) Search(w http.ResponseWriter, r *http.Request) {
	filter := models.VehicleFilter{}

	vendorIdStr := r.URL.Query().Get("vendor_id")
	if vendorIdStr != "" {
		vendorId, err := strconv.ParseInt(vendorIdStr, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid value of vendor_id, must be integer")
			return
		}
		filter.VendorId = &vendorId
	}

	if vehicleType := r.URL.Query().Get("type"); vehicleType != "" {
		vehicleType = strings.ToLower(vehicleType)
		filter.Type = &vehicleType
	}

	filter.City = optionalString(r, "city")
	filter.Query = optionalString(r, "query")

	limit, offset, perr := parsePagination(r)
	if perr != nil {
		writeError(w, perr.Code, perr.Message)
		return
	}
	filter.Limit = limit
	filter.Offset = offset

	vehicles, err := c.Vehicles.FindByFilter(filter)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"query": r.URL.RawQuery,
		}).Errorln("Error searching vehicles")
		writeError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	writeJSON(w, http.StatusOK, vehicles)
}
