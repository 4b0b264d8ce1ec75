package http

import (
	"encoding/json"
	"net/http"
	"time"
)

type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// handleLivez is the liveness probe; it answers ok whenever the process
// is serving at all.
func (r *Router) handleLivez(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Uptime:  time.Since(r.startTime).String(),
		Version: r.buildVersion,
	})
}

// handleReadyz is the readiness probe; it additionally checks that the
// store still answers.
func (r *Router) handleReadyz(w http.ResponseWriter, req *http.Request) {
	status := "ok"
	code := http.StatusOK

	if err := r.store.Ping(req.Context()); err != nil {
		status = "degraded: " + err.Error()
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, healthResponse{
		Status:  status,
		Uptime:  time.Since(r.startTime).String(),
		Version: r.buildVersion,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
