package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/services"
)

// Delays above this would make a single HTTP request crawl for hours;
// offline runs belong in odtool.
const maxDelaySeconds = 60

type TravelTimeHandler struct {
	Calc *services.TravelTimeCalculator
}

// Compute runs the pairwise calculator over inline dataset rows.
// Per-pair backend failures surface as null result fields, never as an
// error status.
func (h *TravelTimeHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TravelTimeBatchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.DelaySeconds < 0 || req.DelaySeconds > maxDelaySeconds {
		writeError(w, r, http.StatusBadRequest, "delay_seconds must be between 0 and 60")
		return
	}

	result, err := h.Calc.CalculateTravelMatrix(r.Context(), services.BatchRequest{
		Rows:           req.Rows,
		OriginLatField: req.OriginLatField,
		OriginLonField: req.OriginLonField,
		DestLatField:   req.DestLatField,
		DestLonField:   req.DestLonField,
		Delay:          time.Duration(req.DelaySeconds * float64(time.Second)),
	})
	if err != nil {
		// Everything the calculator rejects is caller input: bad field
		// names, malformed rows, or the client going away.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("travel time batch aborted: %v", err)
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := dto.TravelTimeBatchResponse{
		Rows:        result.Rows,
		Processed:   result.Processed,
		RoutesFound: result.RoutesFound,
	}
	writeJSON(w, r, http.StatusOK, res)
}
