package api

import (
	"net/http"
	"time"

	"travel-time-service/internal/api/handlers"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(
	repo ports.ODPairRepository,
	provider ports.TableProvider,
	calc *services.TravelTimeCalculator,
	odDelay time.Duration,
	osrmBaseURL, profile string,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{OSRMBaseURL: osrmBaseURL, Profile: profile}
	matrixHandler := &handlers.MatrixHandler{Provider: provider}
	travelTimeHandler := &handlers.TravelTimeHandler{Calc: calc}
	odPairHandler := &handlers.ODPairHandler{
		Repo:  repo,
		Calc:  calc,
		Delay: odDelay,
	}

	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/matrix", matrixHandler.Compute)
	mux.HandleFunc("/travel-times", travelTimeHandler.Compute)
	mux.HandleFunc("/od-pairs", odPairHandler.List)
	mux.HandleFunc("/od-pairs/compute", odPairHandler.Compute)

	return loggingMiddleware(mux)
}
