package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/platform/obs"
	"travel-time-service/internal/ports"
)

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration *float64 `json:"duration"`
		Distance *float64 `json:"distance"`
	} `json:"routes"`
}

// Route fetches one point-to-point leg using the provider's fixed profile.
// Geometry and turn-by-turn detail are disabled to keep the payload minimal.
func (o *OSRMProvider) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.RouteLeg, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	pair := coordPath([]domain.Coordinates{origin, destination})
	endpoint := fmt.Sprintf("%s/route/v1/%s/%s", o.baseURL, o.profile, pair)

	q := url.Values{}
	q.Set("overview", "false")
	q.Set("steps", "false")

	body, err := o.get(ctx, endpoint+"?"+q.Encode(), o.routeTimeout)
	if err != nil {
		return ports.RouteLeg{}, err
	}

	var decoded routeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ports.RouteLeg{}, &ports.ResponseParseError{Reason: "invalid JSON body", Err: err}
	}

	if decoded.Code != osrmCodeOK {
		return ports.RouteLeg{}, &ports.ExternalServiceError{Code: decoded.Code, HTTPStatus: http.StatusOK}
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteLeg{}, &ports.ResponseParseError{Reason: "response has no routes"}
	}

	first := decoded.Routes[0]
	if first.Duration == nil || first.Distance == nil {
		return ports.RouteLeg{}, &ports.ResponseParseError{Reason: "route missing duration or distance"}
	}

	return ports.RouteLeg{
		DurationSeconds: *first.Duration,
		DistanceMeters:  *first.Distance,
	}, nil
}
