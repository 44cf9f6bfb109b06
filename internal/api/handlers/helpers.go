package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"travel-time-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// statusForProviderError maps the routing error taxonomy onto HTTP
// statuses: unreachable backends are gateway timeouts, refusals and
// unusable replies are bad gateways. The refusal message keeps the
// backend-reported code so callers can tell "NoTable" from "InvalidQuery".
func statusForProviderError(err error) (int, string) {
	var te *ports.TransportError
	if errors.As(err, &te) {
		return http.StatusGatewayTimeout, "routing backend unreachable"
	}

	var se *ports.ExternalServiceError
	if errors.As(err, &se) {
		return http.StatusBadGateway, fmt.Sprintf("routing backend declined request: %s", se.Code)
	}

	var pe *ports.ResponseParseError
	if errors.As(err, &pe) {
		return http.StatusBadGateway, "routing backend returned an unusable response"
	}

	return http.StatusInternalServerError, "internal server error"
}
