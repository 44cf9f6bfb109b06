package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

const osrmCodeOK = "Ok"

// OSRMProvider implements the table and route ports against an OSRM server.
//
// One request per call, no retries and no response caching: the public OSRM
// demo server rate-limits aggressively and asks clients to keep traffic
// simple. Rate limiting between calls is the caller's responsibility.
//
// The provider is safe for concurrent use; all state is immutable after
// construction.
type OSRMProvider struct {
	session      *http.Client
	baseURL      string
	profile      string
	tableTimeout time.Duration
	routeTimeout time.Duration
}

func NewOSRMProvider(baseURL, profile string) (*OSRMProvider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("OSRM base URL is empty")
	}
	if strings.TrimSpace(profile) == "" {
		return nil, errors.New("OSRM profile is empty")
	}

	return &OSRMProvider{
		session:      &http.Client{},
		baseURL:      strings.TrimRight(baseURL, "/"),
		profile:      profile,
		tableTimeout: 30 * time.Second,
		routeTimeout: 10 * time.Second,
	}, nil
}

// get issues one request and maps failures onto the shared error taxonomy:
// TransportError when the backend is unreachable, ExternalServiceError for
// HTTP-level refusals. Body-level refusals (code != "Ok") are left to the
// endpoint-specific decoders, which know the expected shape.
func (o *OSRMProvider) get(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.session.Do(req)
	if err != nil {
		return nil, &ports.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ports.TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		// OSRM error bodies carry their own status string; fall back to the
		// HTTP status text when the body is not the expected JSON.
		var decoded struct {
			Code string `json:"code"`
		}
		_ = json.Unmarshal(body, &decoded)
		code := decoded.Code
		if code == "" {
			code = http.StatusText(resp.StatusCode)
		}
		return nil, &ports.ExternalServiceError{Code: code, HTTPStatus: resp.StatusCode}
	}

	return body, nil
}

// coordPath joins coordinates into the semicolon-separated lon,lat path
// segment shared by all OSRM endpoints.
func coordPath(coords []domain.Coordinates) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, c.LonLat())
	}
	return strings.Join(parts, ";")
}

// indexRange renders "lo;lo+1;...;hi-1" for the table source and
// destination index lists.
func indexRange(lo, hi int) string {
	parts := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ";")
}
