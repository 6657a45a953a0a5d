package controllers

import (
	"net/http"

	"github.com/fertilewaif/vehicle-rentals/models"
	log "github.com/sirupsen/logrus"
)

type VendorFinder interface {
	FindByFilter(filter models.VendorFilter) ([]models.Vendor, error)
}

type VendorsController struct {
	Vendors VendorFinder
}

func NewVendorsController(vendors VendorFinder) *VendorsController {
	return &VendorsController{Vendors: vendors}
}

func (c *VendorsController) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, perr := parsePagination(r)
	if perr != nil {
		writeError(w, perr.Code, perr.Message)
		return
	}

	filter := models.VendorFilter{
		Query:  optionalString(r, "query"),
		City:   optionalString(r, "city"),
		Limit:  limit,
		Offset: offset,
	}

	vendors, err := c.Vendors.FindByFilter(filter)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"query": r.URL.RawQuery,
		}).Errorln("Error listing vendors")
		writeError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	writeJSON(w, http.StatusOK, vendors)
}
