package controllers

import (
	"errors"
	"net/http"

	"github.com/fertilewaif/vehicle-rentals/importer"
	"github.com/fertilewaif/vehicle-rentals/models"
	log "github.com/sirupsen/logrus"
)

const (
	multipartMemory   = 8 << 20
	multipartOverhead = 1 << 20
)

type importResponse struct {
	Success bool `json:"success"`
	*models.ImportResult
}

type ImportsController struct {
	Importer       *importer.Importer
	MaxUploadBytes int64
}

func NewImportsController(im *importer.Importer, maxUploadBytes int64) *ImportsController {
	return &ImportsController{
		Importer:       im,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (c *ImportsController) ImportVendors(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(table *importer.Table) (*models.ImportResult, error) {
		return c.Importer.ImportVendors(table)
	})
}

// ImportVehicles takes the target vendor (id or slug) from the vendor_id form field.
func (c *ImportsController) ImportVehicles(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(table *importer.Table) (*models.ImportResult, error) {
		return c.Importer.ImportVehicles(table, r.FormValue("vendor_id"))
	})
}

func (c *ImportsController) ImportTowns(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(table *importer.Table) (*models.ImportResult, error) {
		return c.Importer.ImportTowns(table)
	})
}

func (c *ImportsController) handle(w http.ResponseWriter, r *http.Request, run func(*importer.Table) (*models.ImportResult, error)) {
	table, respErr := c.readUpload(w, r)
	if respErr != nil {
		writeError(w, respErr.Code, respErr.Message)
		return
	}

	result, err := run(table)
	if errors.Is(err, importer.ErrMissingVendor) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"path":  r.URL.Path,
		}).Errorln("Import aborted")
		writeError(w, http.StatusInternalServerError, "Error processing import")
		return
	}

	writeJSON(w, http.StatusOK, importResponse{Success: true, ImportResult: result})
}

func (c *ImportsController) readUpload(w http.ResponseWriter, r *http.Request) (*importer.Table, *models.Error) {
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &models.Error{Code: http.StatusBadRequest, Message: "File is too large"}
		}
		return nil, &models.Error{Code: http.StatusBadRequest, Message: "Expected multipart form data"}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, &models.Error{Code: http.StatusBadRequest, Message: "File is required"}
	}
	defer file.Close()

	if header.Size > c.MaxUploadBytes {
		return nil, &models.Error{Code: http.StatusBadRequest, Message: "File is too large"}
	}
	if !importer.SupportedFile(header.Filename) {
		return nil, &models.Error{Code: http.StatusBadRequest, Message: importer.ErrUnsupportedFile.Error()}
	}

	table, err := importer.Parse(header.Filename, file)
	if err != nil {
		log.WithFields(log.Fields{
			"error":    err,
			"filename": header.Filename,
		}).Warningln("Error parsing upload")
		return nil, &models.Error{Code: http.StatusBadRequest, Message: "Error parsing file: " + err.Error()}
	}

	return table, nil
}
