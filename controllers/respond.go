package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fertilewaif/vehicle-rentals/models"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	respJson, _ := json.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(respJson)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, models.Error{Code: code, Message: message})
}

// parsePagination reads page (1-based) and per_page, returning limit and offset.
func parsePagination(r *http.Request) (int, int, *models.Error) {
	page, perPage := 1, defaultPerPage

	if s := r.URL.Query().Get("page"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p < 1 {
			return 0, 0, &models.Error{Code: http.StatusBadRequest, Message: "Invalid value of page, must be a positive integer"}
		}
		page = p
	}

	if s := r.URL.Query().Get("per_page"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p < 1 {
			return 0, 0, &models.Error{Code: http.StatusBadRequest, Message: "Invalid value of per_page, must be a positive integer"}
		}
		perPage = p
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return perPage, (page - 1) * perPage, nil
}

func optionalString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
