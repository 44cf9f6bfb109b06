package routing

import (
	"context"
	"net/http"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

type MockLeg struct {
	Origin, Destination domain.Coordinates
	Seconds, Meters     float64
}

// MockRoutingProvider serves canned table and route results for tests.
type MockRoutingProvider struct {
	Table      ports.TableResult
	TableErr   error
	RouteErr   error
	TableCalls int
	RouteCalls int

	legs map[string]ports.RouteLeg
}

func NewMockRoutingProvider(legs []MockLeg) *MockRoutingProvider {
	m := make(map[string]ports.RouteLeg, len(legs))
	for _, l := range legs {
		m[legKey(l.Origin, l.Destination)] = ports.RouteLeg{DurationSeconds: l.Seconds, DistanceMeters: l.Meters}
	}
	return &MockRoutingProvider{legs: m}
}

func legKey(origin, destination domain.Coordinates) string {
	return origin.LonLat() + "|" + destination.LonLat()
}

func (p *MockRoutingProvider) TableMatrix(
	ctx context.Context,
	profile string,
	origins, destinations []domain.Coordinates,
) (ports.TableResult, error) {
	p.TableCalls++
	if p.TableErr != nil {
		return ports.TableResult{}, p.TableErr
	}
	return p.Table, nil
}

// Route returns the canned leg for the pair, or an ExternalServiceError
// with code "NoRoute" when no leg was registered.
func (p *MockRoutingProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteLeg, error) {
	p.RouteCalls++
	if p.RouteErr != nil {
		return ports.RouteLeg{}, p.RouteErr
	}

	leg, ok := p.legs[legKey(origin, destination)]
	if !ok {
		return ports.RouteLeg{}, &ports.ExternalServiceError{Code: "NoRoute", HTTPStatus: http.StatusOK}
	}
	return leg, nil
}
