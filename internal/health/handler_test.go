// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	up   = pingFunc(func(context.Context) error { return nil })
	down = pingFunc(func(context.Context) error { return errors.New("connection refused") })
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: down})
	h.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	rec := serve(h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2024-05-01T09:00:00Z"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		deps   []Dependency
		status int
		body   string
	}{
		{
			name:   "all healthy",
			deps:   []Dependency{{Name: "database", Checker: up}, {Name: "redis", Checker: up}},
			status: http.StatusOK,
			body:   StatusOK,
		},
		{
			name:   "optional redis not configured",
			deps:   []Dependency{{Name: "database", Checker: up}, {Name: "redis", Optional: true}},
			status: http.StatusOK,
			body:   StatusOK,
		},
		{
			name:   "database down",
			deps:   []Dependency{{Name: "database", Checker: down}, {Name: "redis", Checker: up}},
			status: http.StatusServiceUnavailable,
			body:   StatusDegraded,
		},
		{
			name:   "required dependency missing",
			deps:   []Dependency{{Name: "database"}},
			status: http.StatusServiceUnavailable,
			body:   StatusDegraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(tt.deps...), "/readyz")
			assert.Equal(t, tt.status, rec.Code)

			var resp ReadinessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.body, resp.Status)
			assert.Len(t, resp.Checks, len(tt.deps))
		})
	}
}

func TestShutdownAndNotReady(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: up})

	assert.Equal(t, http.StatusOK, serve(h, "/livez").Code)

	h.SetReady(false)
	rec := serve(h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), StatusNotReady)

	h.SetShutdown(true)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/livez").Code)
	assert.Equal(t, http.StatusOK, serve(h, "/health").Code)
}
