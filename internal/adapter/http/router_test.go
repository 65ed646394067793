package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmattos/bankslip/internal/adapter/http/handler"
	apimiddleware "github.com/acmattos/bankslip/internal/adapter/http/middleware"
	"github.com/acmattos/bankslip/internal/adapter/repository/memory"
	"github.com/acmattos/bankslip/internal/adapter/repository/postgres"
	redisrepo "github.com/acmattos/bankslip/internal/adapter/repository/redis"
	"github.com/acmattos/bankslip/internal/domain"
	"github.com/acmattos/bankslip/internal/infrastructure/metrics"
	"github.com/acmattos/bankslip/internal/outcome"
	"github.com/acmattos/bankslip/internal/usecase"
)

var testToday = domain.NewDate(2018, time.June, 20)

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	store := memory.NewBankSlipStore()
	uc := usecase.NewBankSlipUseCase(
		store,
		postgres.NewUUIDGenerator(),
		postgres.NewULIDTicketGenerator(),
		zerolog.Nop(),
		usecase.WithToday(func() domain.Date { return testToday }),
	)

	cfg := RouterConfig{
		BankSlipHandler: handler.NewBankSlipHandler(uc),
		HealthHandler:   handler.NewHealthHandler(handler.Dependency{Name: "store", Pinger: store}),
		IdempotencyTTL:  time.Hour,
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func do(t *testing.T, router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/ready", "").Code)
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.MetricsHandler = promhttp.Handler()
	}))

	chiRoutes, ok := router.(chi.Routes)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /rest/bankslips/",
		"GET /rest/bankslips/",
		"GET /rest/bankslips/{id}",
		"PUT /rest/bankslips/{id}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_BankSlipLifecycle(t *testing.T) {
	router := NewRouter(newRouterConfig())

	empty := do(t, router, http.MethodGet, "/rest/bankslips", "")
	require.Equal(t, http.StatusNotFound, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())

	created := do(t, router, http.MethodPost, "/rest/bankslips",
		`{"dueDate":"2018-06-10","totalInCents":"100000","customer":"Trillian Company","status":"PENDING"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, "201 : Bankslip created", created.Body.String())
	location := created.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/rest/bankslips/"), location)

	listed := do(t, router, http.MethodGet, "/rest/bankslips", "")
	require.Equal(t, http.StatusOK, listed.Code)
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Trillian Company", summaries[0]["customer"])
	assert.NotContains(t, summaries[0], "fine")

	// Ten days late: 0.5% of the total.
	detail := do(t, router, http.MethodGet, location, "")
	require.Equal(t, http.StatusOK, detail.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(detail.Body.Bytes(), &body))
	assert.Equal(t, "500", body["fine"])
	assert.Equal(t, "PENDING", body["status"])

	paid := do(t, router, http.MethodPut, location, `{"status":"PAID"}`)
	require.Equal(t, http.StatusOK, paid.Code)
	assert.Equal(t, "200 : Bankslip paid", paid.Body.String())

	again := do(t, router, http.MethodPut, location, `{"status":"CANCELED"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, again.Code)
	assert.Equal(t, "422 : Bankslip already resolved", again.Body.String())
}

func TestNewRouter_InvalidRequests(t *testing.T) {
	router := NewRouter(newRouterConfig())

	noBody := do(t, router, http.MethodPost, "/rest/bankslips", "")
	assert.Equal(t, http.StatusBadRequest, noBody.Code)

	invalid := do(t, router, http.MethodPost, "/rest/bankslips", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, invalid.Code)
	assert.Equal(t, "Can't be null!", invalid.Header().Get("dueDate"))
	assert.Equal(t, "Can't be null or empty!", invalid.Header().Get("customer"))

	badDate := do(t, router, http.MethodPost, "/rest/bankslips",
		`{"dueDate":"2018/06/10","totalInCents":"100000","customer":"Trillian Company","status":"LATE"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, badDate.Code)
	assert.Equal(t, "Date format accepted: (yyyy-MM-dd)", badDate.Header().Get("dueDate"))
	assert.Equal(t, "Status accepted: (PENDING, PAID or CANCELED)", badDate.Header().Get("status"))

	nilID := do(t, router, http.MethodGet, "/rest/bankslips/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusBadRequest, nilID.Code)

	badID := do(t, router, http.MethodGet, "/rest/bankslips/1-1-1-1-1", "")
	assert.Equal(t, http.StatusBadRequest, badID.Code)

	missing := do(t, router, http.MethodGet, "/rest/bankslips/c2dbd236-3fa5-4ccc-9c12-bd0ae1d6dd89", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "404 : Bankslip not found with the specified id", missing.Body.String())
}

func TestNewRouter_IdempotentCreateReplays(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = redisrepo.NewIdempotencyStore(client)
	}))

	body := `{"dueDate":"2018-06-10","totalInCents":"100000","customer":"Trillian Company","status":"PENDING"}`
	first := do(t, router, http.MethodPost, "/rest/bankslips", body, apimiddleware.IdempotencyKeyHeader, "key-123")
	require.Equal(t, http.StatusCreated, first.Code)

	second := do(t, router, http.MethodPost, "/rest/bankslips", body, apimiddleware.IdempotencyKeyHeader, "key-123")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(apimiddleware.IdempotencyReplayHeader))
	assert.Equal(t, first.Header().Get("Location"), second.Header().Get("Location"))

	listed := do(t, router, http.MethodGet, "/rest/bankslips", "")
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 1)
}

type panicOnceService struct {
	*usecase.BankSlipUseCase
	panicked bool
}

func (s *panicOnceService) Create(ctx context.Context, input usecase.CreateBankSlipInput) outcome.Outcome {
	if !s.panicked {
		s.panicked = true
		panic("store exploded")
	}
	return s.BankSlipUseCase.Create(ctx, input)
}

func TestNewRouter_IdempotentCreateRetriesAfterPanic(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	svc := &panicOnceService{BankSlipUseCase: usecase.NewBankSlipUseCase(
		memory.NewBankSlipStore(), postgres.NewUUIDGenerator(), postgres.NewULIDTicketGenerator(), zerolog.Nop())}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.BankSlipHandler = handler.NewBankSlipHandler(svc)
		cfg.IdempotencyStore = redisrepo.NewIdempotencyStore(client)
	}))

	body := `{"dueDate":"2018-06-10","totalInCents":"100000","customer":"Trillian Company","status":"PENDING"}`
	first := do(t, router, http.MethodPost, "/rest/bankslips", body, apimiddleware.IdempotencyKeyHeader, "key-retry")
	require.Equal(t, http.StatusInternalServerError, first.Code)

	retried := do(t, router, http.MethodPost, "/rest/bankslips", body, apimiddleware.IdempotencyKeyHeader, "key-retry")
	assert.Equal(t, http.StatusCreated, retried.Code)
	assert.Empty(t, retried.Header().Get(apimiddleware.IdempotencyReplayHeader))
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	store := memory.NewBankSlipStore()
	uc := usecase.NewBankSlipUseCase(store, postgres.NewUUIDGenerator(), postgres.NewULIDTicketGenerator(),
		zerolog.Nop(), usecase.WithMetrics(m))

	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.BankSlipHandler = handler.NewBankSlipHandler(uc)
		cfg.Metrics = apimiddleware.NewHTTPMetrics(reg)
		cfg.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}))

	do(t, router, http.MethodPost, "/rest/bankslips",
		`{"dueDate":"2018-06-10","totalInCents":"100000","customer":"Trillian Company","status":"PENDING"}`)

	rec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bankslip_created_total 1")
	assert.Contains(t, rec.Body.String(), `path="/rest/bankslips`)
}
