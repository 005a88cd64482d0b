package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MiniShopTech/MiniShop/internal/infra/observability"
	"github.com/MiniShopTech/MiniShop/internal/infra/persistence/memory"
	"github.com/MiniShopTech/MiniShop/internal/pkg/clock"
	categoryuc "github.com/MiniShopTech/MiniShop/internal/usecase/category"
	productuc "github.com/MiniShopTech/MiniShop/internal/usecase/product"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	handler  http.Handler
	category *categoryuc.Service
	product  *productuc.Service
}

func newTestServer(t *testing.T, mutate ...func(*Dependencies)) *testServer {
	t.Helper()
	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository()
	clk := clock.NewMock(t0)

	deps := Dependencies{
		CategoryService: categoryuc.NewService(categories, products, clk),
		ProductService:  productuc.NewService(products, categories, clk),
		Metrics:         observability.NewMetrics(),
	}
	for _, m := range mutate {
		m(&deps)
	}
	return &testServer{
		handler:  NewAPI(deps).Router(),
		category: deps.CategoryService,
		product:  deps.ProductService,
	}
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Kind    string          `json:"kind"`
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)

	var env testEnvelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rr, env := srv.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, env.Success)
	require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))

	down := newTestServer(t, func(d *Dependencies) {
		d.HealthCheck = func(context.Context) error { return errors.New("dial tcp 10.0.0.1:3306: refused") }
	})
	rr, env = down.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.False(t, env.Success)
	require.Empty(t, env.Data)
	require.Equal(t, "store", env.Kind)
	require.NotContains(t, env.Message, "10.0.0.1")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodGet, "/api/v1/categories", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	srv.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `minishop_http_requests_total{code="200",method="GET",route="/api/v1/categories`)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	srv := newTestServer(t)
	rr, env := srv.do(t, http.MethodGet, "/api/v1/widgets", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.False(t, env.Success)
}

func TestNonJSONBodyUsesEnvelope(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader("name=Shoes"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.NotEmpty(t, env.Message)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Shoes"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr = httptest.NewRecorder()
	srv.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, func(d *Dependencies) { d.Options.RateLimitPerMinute = 2 })
	for i := 0; i < 2; i++ {
		rr, _ := srv.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr, env := srv.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.False(t, env.Success)
}
