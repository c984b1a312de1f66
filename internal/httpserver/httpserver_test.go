package httpserver

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-planner/config"
	"ai-task-planner/internal/ai/enhancer"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/metrics"
	"ai-task-planner/pkg/scope"
)

// newTestServer points at a database that does not exist; sql.Open is lazy,
// so only handlers that touch the database fail.
func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	db, err := sql.Open("postgres", "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv, err := New(log.NewNop(), Config{
		Port:       8080,
		Mode:       gin.TestMode,
		PostgresDB: db,
		JWTManager: scope.New("secret", "test", time.Hour),
		Metrics:    metrics.NewCollector("test"),
		CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Enhancer:   enhancer.NewNull(),
	})
	require.NoError(t, err)
	return srv
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	tcs := map[string]struct {
		path     string
		wantCode int
	}{
		"health":           {path: "/health", wantCode: http.StatusOK},
		"live":             {path: "/live", wantCode: http.StatusOK},
		"ready without db": {path: "/ready", wantCode: http.StatusServiceUnavailable},
		"metrics":          {path: "/metrics", wantCode: http.StatusOK},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestDomainRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodPost, "/api/v1/ai/create"},
		{http.MethodPost, "/api/v1/ai/preview"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(route.method, route.path, strings.NewReader(`{}`))
			srv.Handler().ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRouteValidatesBeforeDatabase(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
