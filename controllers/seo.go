package controllers

import (
	"errors"
	"net/http"

	"github.com/fertilewaif/vehicle-rentals/seo"
	log "github.com/sirupsen/logrus"
)

type SeoController struct {
	Resolver *seo.Resolver
}

func NewSeoController(resolver *seo.Resolver) *SeoController {
	return &SeoController{Resolver: resolver}
}

func (c *SeoController) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	res, err := c.Resolver.Resolve(path)
	if errors.Is(err, seo.ErrNoMatch) {
		writeError(w, http.StatusNotFound, "No page for path")
		return
	}
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"path":  path,
		}).Errorln("Error resolving SEO path")
		writeError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
