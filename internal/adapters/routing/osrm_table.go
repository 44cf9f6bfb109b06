package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/obs"
	"travel-time-service/internal/ports"
)

type tableResponse struct {
	Code      string       `json:"code"`
	Durations [][]*float64 `json:"durations"`
	Distances [][]*float64 `json:"distances"`
}

// TableMatrix fetches one many-to-many duration/distance table.
//
// Origins are encoded before destinations in a single coordinate path; the
// sources/destinations parameters select the two index ranges. The distance
// annotation must be requested explicitly or OSRM returns durations only.
func (o *OSRMProvider) TableMatrix(
	ctx context.Context,
	profile string,
	origins []domain.Coordinates,
	destinations []domain.Coordinates,
) (_ ports.TableResult, err error) {
	defer obs.Time(ctx, "osrm.TableMatrix")(&err)

	// The backend's behavior for empty index lists is undefined; fail fast
	// locally instead of sending a malformed request.
	if len(origins) == 0 {
		return ports.TableResult{}, errors.New("table matrix: origins must be non-empty")
	}
	if len(destinations) == 0 {
		return ports.TableResult{}, errors.New("table matrix: destinations must be non-empty")
	}

	if profile == "" {
		profile = o.profile
	}

	combined := make([]domain.Coordinates, 0, len(origins)+len(destinations))
	combined = append(combined, origins...)
	combined = append(combined, destinations...)

	endpoint := fmt.Sprintf("%s/table/v1/%s/%s", o.baseURL, profile, coordPath(combined))

	q := url.Values{}
	q.Set("sources", indexRange(0, len(origins)))
	q.Set("destinations", indexRange(len(origins), len(combined)))
	q.Set("annotations", "duration,distance")

	body, err := o.get(ctx, endpoint+"?"+q.Encode(), o.tableTimeout)
	if err != nil {
		return ports.TableResult{}, err
	}

	var decoded tableResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ports.TableResult{}, &ports.ResponseParseError{Reason: "invalid JSON body", Err: err}
	}

	if decoded.Code != osrmCodeOK {
		return ports.TableResult{}, &ports.ExternalServiceError{Code: decoded.Code, HTTPStatus: http.StatusOK}
	}

	if len(decoded.Durations) != len(origins) || len(decoded.Distances) != len(origins) {
		return ports.TableResult{}, &ports.ResponseParseError{
			Reason: fmt.Sprintf(
				"expected %d matrix rows; got durations=%d distances=%d",
				len(origins), len(decoded.Durations), len(decoded.Distances),
			),
		}
	}

	for i := range decoded.Durations {
		if len(decoded.Durations[i]) != len(destinations) || len(decoded.Distances[i]) != len(destinations) {
			return ports.TableResult{}, &ports.ResponseParseError{
				Reason: fmt.Sprintf(
					"row %d: expected %d columns; got durations=%d distances=%d",
					i, len(destinations), len(decoded.Durations[i]), len(decoded.Distances[i]),
				),
			}
		}
	}

	return ports.TableResult{
		DurationsSeconds: decoded.Durations,
		DistancesMeters:  decoded.Distances,
	}, nil
}
