package httpapi

import (
	"net/http"
	"time"

	"github.com/usabbag/rainparis/internal/utils"
)

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	version   string
	startedAt time.Time
}

func NewHealthchecker(version string) healthchecker {
	return &healthcheckerImpl{version: version, startedAt: time.Now()}
}

func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"version":        h.version,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}

func registerHealthcheck(mux *http.ServeMux, version string) {
	healthchecker := NewHealthchecker(version)
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}
