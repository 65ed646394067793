package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmattos/bankslip/internal/adapter/http/middleware"
	"github.com/acmattos/bankslip/internal/infrastructure/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StoreDriver:            config.StoreDriverMemory,
		RedisURL:               "redis://localhost:6379",
		DatabaseConnectTimeout: time.Second,
		HTTPPort:               "0",
		HTTPShutdownTimeout:    time.Second,
		IdempotencyTTL:         time.Hour,
	}
}

func TestNewAppWithMemoryStore(t *testing.T) {
	a, err := newApp(context.Background(), memoryConfig(), zerolog.Nop(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.rateLimiter)

	req := httptest.NewRequest(http.MethodPost, "/rest/bankslips",
		strings.NewReader(`{"dueDate":"2018-01-01","totalInCents":"100000","customer":"Trillian Company","status":"PENDING"}`))
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	ready := httptest.NewRecorder()
	a.handler.ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, ready.Code)
	assert.Contains(t, ready.Body.String(), `"store":"ok"`)

	scrape := httptest.NewRecorder()
	a.handler.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), "bankslip_created_total 1")
}

func TestNewAppWithRedisIdempotency(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.RedisEnabled = true
	cfg.RedisURL = "redis://" + mr.Addr()
	cfg.RateLimitRPS = 10
	cfg.RateLimitBurst = 10

	a, err := newApp(context.Background(), cfg, zerolog.Nop(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.rateLimiter)

	body := `{"dueDate":"2018-01-01","totalInCents":"100000","customer":"Trillian Company","status":"PENDING"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/rest/bankslips", strings.NewReader(body))
		req.Header.Set(middleware.IdempotencyKeyHeader, "same-key")
		rec := httptest.NewRecorder()
		a.handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		if i == 1 {
			assert.Equal(t, "true", rec.Header().Get(middleware.IdempotencyReplayHeader))
		}
	}

	ready := httptest.NewRecorder()
	a.handler.ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Contains(t, ready.Body.String(), `"redis":"ok"`)
}

func TestNewAppFailsWhenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := memoryConfig()
	cfg.RedisEnabled = true
	cfg.RedisURL = "redis://" + addr
	cfg.DatabaseConnectTimeout = 200 * time.Millisecond

	_, err := newApp(context.Background(), cfg, zerolog.Nop(), prometheus.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(ctx, memoryConfig(), zerolog.Nop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
