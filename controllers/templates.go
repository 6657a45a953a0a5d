package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/fertilewaif/vehicle-rentals/templates"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type TemplateStore interface {
	List() ([]models.Template, error)
	FindByName(name string) (*models.Template, error)
	Upsert(t *models.Template) error
}

type TemplatesController struct {
	Templates TemplateStore
	validate  *validator.Validate
}

type previewRequest struct {
	Vars map[string]string `json:"vars"`
}

func NewTemplatesController(store TemplateStore) *TemplatesController {
	return &TemplatesController{
		Templates: store,
		validate:  validator.New(),
	}
}

func (c *TemplatesController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Templates.List()
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Errorln("Error listing templates")
		writeError(w, http.StatusInternalServerError, "Error processing query")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Put creates or replaces the template named in the path.
func (c *TemplatesController) Put(w http.ResponseWriter, r *http.Request) {
	var t models.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "Error parsing request body")
		return
	}
	t.Name = mux.Vars(r)["name"]

	if err := c.validate.Struct(&t); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid template: "+err.Error())
		return
	}
	if t.Channel == models.ChannelEmail && t.Subject == "" {
		writeError(w, http.StatusBadRequest, "Invalid template: email templates need a subject")
		return
	}

	if err := c.Templates.Upsert(&t); err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"name":  t.Name,
		}).Errorln("Error saving template")
		writeError(w, http.StatusInternalServerError, "Error saving template")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Preview renders the stored template with the posted variables.
func (c *TemplatesController) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error parsing request body")
		return
	}

	name := mux.Vars(r)["name"]
	t, err := c.Templates.FindByName(name)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"name":  name,
		}).Errorln("Error loading template")
		writeError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	writeJSON(w, http.StatusOK, templates.RenderTemplate(*t, req.Vars))
}
