package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde a sonda de liveness com o horário corrente.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
