package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-time-service/internal/platform/obs"
)

func TestLoggingMiddlewareAssignsRequestID(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(obs.RequestIDKey).(string)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	loggingMiddleware(next).ServeHTTP(rec, req)

	if got == "" {
		t.Error("handler context carries no request id")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestLoggingMiddlewareAssignsDistinctIDs(t *testing.T) {
	seen := map[string]bool{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(obs.RequestIDKey).(string)
		seen[id] = true
	})

	h := loggingMiddleware(next)
	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	if len(seen) != 3 {
		t.Errorf("got %d distinct request ids over 3 requests", len(seen))
	}
}
