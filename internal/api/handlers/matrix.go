package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"
)

// The public OSRM demo server rejects tables above 100 locations.
const maxTableLocations = 100

type MatrixHandler struct {
	Provider ports.TableProvider
}

// Compute runs one batched many-to-many lookup and returns both labeled
// tables. All-or-nothing: any backend failure maps to an error status and
// no partial tables are returned.
func (h *MatrixHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.MatrixRequest

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

	if len(req.Origins) == 0 {
		writeError(w, r, http.StatusBadRequest, "origins must be non-empty")
		return
	}
	if len(req.Destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "destinations must be non-empty")
		return
	}
	if len(req.Origins)+len(req.Destinations) > maxTableLocations {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d coordinates per table request", maxTableLocations))
		return
	}

	origins, err := coordinatesFromDTO(req.Origins, "origins")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	destinations, err := coordinatesFromDTO(req.Destinations, "destinations")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	matrices, err := services.ComputeTravelMatrix(r.Context(), h.Provider, req.Profile, origins, destinations)
	if err != nil {
		status, msg := statusForProviderError(err)
		log.Printf("compute travel matrix failed: %v", err)
		writeError(w, r, status, msg)
		return
	}

	res := dto.MatrixResponse{
		DurationsMinutes: tableDTO(&matrices.DurationsMinutes),
		DistancesKm:      tableDTO(&matrices.DistancesKm),
	}
	writeJSON(w, r, http.StatusOK, res)
}

func coordinatesFromDTO(in []dto.CoordinateDTO, name string) ([]domain.Coordinates, error) {
	out := make([]domain.Coordinates, 0, len(in))
	for i, c := range in {
		coord := domain.Coordinates{Lat: c.Lat, Lon: c.Lon}
		if !coord.Valid() {
			return nil, fmt.Errorf("%s[%d]: coordinate out of range", name, i)
		}
		out = append(out, coord)
	}
	return out, nil
}

func tableDTO(m *domain.Matrix) dto.TableDTO {
	return dto.TableDTO{
		RowLabels: m.RowLabels,
		ColLabels: m.ColLabels,
		Cells:     m.Cells,
	}
}
