package controllers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping() error
}

type HealthController struct {
	DB Pinger
}

func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.Ping(); err != nil {
		log.WithFields(log.Fields{"error": err}).Warningln("Health check failed")
		writeError(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
