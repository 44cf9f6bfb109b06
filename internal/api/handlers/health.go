package handlers

import (
	"net/http"
)

// HealthHandler reports liveness plus the routing backend this instance
// targets, so a probe can tell staging and production apart.
type HealthHandler struct {
	OSRMBaseURL string
	Profile     string
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status":        "ok",
		"osrm_base_url": h.OSRMBaseURL,
		"profile":       h.Profile,
	}
	writeJSON(w, r, http.StatusOK, res)
}
