package handlers

import (
	"log"
	"net/http"
	"time"

	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"
)

type ODPairHandler struct {
	Repo ports.ODPairRepository
	Calc *services.TravelTimeCalculator
	// Pause between pairwise calls during a compute run.
	Delay time.Duration
}

func (h *ODPairHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	pairs, err := h.Repo.ListODPairs(r.Context())
	if err != nil {
		log.Printf("list od pairs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListODPairsResponse{ODPairs: make([]dto.ODPairResponse, 0, len(pairs))}
	for _, p := range pairs {
		res.ODPairs = append(res.ODPairs, odPairDTO(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Compute runs the pairwise calculator over every stored OD pair and
// persists the results as they arrive, so an aborted run keeps the rows it
// already resolved.
func (h *ODPairHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()

	pairs, err := h.Repo.ListODPairs(ctx)
	if err != nil {
		log.Printf("list od pairs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	saveFailures := 0
	progress := func(processed, total int) {
		p := pairs[processed-1]
		if err := h.Repo.SaveResult(ctx, p); err != nil {
			log.Printf("save od pair result failed pair_id=%d err=%v", p.PairID, err)
			saveFailures++
		}
	}

	found, err := h.Calc.CalculateODPairs(ctx, pairs, h.Delay, progress)
	if err != nil {
		log.Printf("compute od pairs aborted: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if saveFailures > 0 {
		log.Printf("compute od pairs finished with save failures count=%d", saveFailures)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ComputeODPairsResponse{
		Processed:   len(pairs),
		RoutesFound: found,
	}
	writeJSON(w, r, http.StatusOK, res)
}

func odPairDTO(p *domain.ODPair) dto.ODPairResponse {
	return dto.ODPairResponse{
		PairID:            p.PairID,
		OriginLat:         p.OriginLat,
		OriginLon:         p.OriginLon,
		DestLat:           p.DestLat,
		DestLon:           p.DestLon,
		TravelTimeMinutes: p.TravelTimeMinutes,
		DistanceKm:        p.DistanceKm,
	}
}
