package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHealthRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", db).RegisterRoutes(router)
	return router
}

func TestLiveness(t *testing.T) {
	router := newHealthRouter(nil)

	for _, path := range []string{"/", "/health"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.JSONEq(t, `{"ok":true}`, rr.Body.String(), path)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name string
		db   Pinger
		want string
	}{
		{"no store", nil, "disabled"},
		{"store up", pingerFunc(func(context.Context) error { return nil }), "up"},
		{"store down", pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			newHealthRouter(tt.db).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			require.Equal(t, http.StatusOK, rr.Code)

			var response HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, "healthy", response.Status)
			assert.Equal(t, "test-service", response.Service)
			assert.Equal(t, "1.0.0", response.Version)
			assert.Equal(t, tt.want, response.DB)
		})
	}
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	newHealthRouter(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
