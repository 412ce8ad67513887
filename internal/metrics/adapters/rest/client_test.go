package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"account-analytics-service/internal/metrics/core/domain"
)

func newTestFetcher(t *testing.T, srv *httptest.Server, maxFailures uint32) *Fetcher {
	t.Helper()

	f, err := NewFetcher(Settings{
		BaseURL:     srv.URL + "/api",
		Token:       "secret",
		MaxFailures: maxFailures,
		OpenTimeout: time.Minute,
	}, srv.Client(), zap.NewNop())
	require.NoError(t, err)
	return f
}

func TestFetcher_DecodesMetrics(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/acc_1/metrics", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"key":"followers","currentValue":1000,"history":[{"date":"2024-01-01","value":990}]},
			{"key":"reach","currentValue":0,"history":[{"date":"2024-01-01","value":10},{"date":"2024-01-02","value":20}]}
		]}`))
	}))
	defer srv.Close()

	metrics, err := newTestFetcher(t, srv, 5).FetchAccountMetrics(context.Background(), "acc_1", domain.Window30)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, "followers", metrics[0].Key)
	assert.InDelta(t, 1000, metrics[0].CurrentValue, 0.0001)
	assert.Equal(t, []domain.DailyMetric{{Date: "2024-01-01", Value: 10}, {Date: "2024-01-02", Value: 20}}, metrics[1].History)
}

func TestFetcher_ClientErrorDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv, 1)
	for i := 0; i < 3; i++ {
		_, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
		require.ErrorIs(t, err, ErrUpstreamStatus)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetcher_ServerErrorsOpenBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv, 2)

	for i := 0; i < 2; i++ {
		_, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
		require.ErrorIs(t, err, ErrUpstreamStatus)
	}

	_, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetcher_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.FetchAccountMetrics(ctx, "acc_1", domain.Window7)
	require.True(t, errors.Is(err, context.DeadlineExceeded))

	// cancellation is not a backend failure, so the breaker stays closed
	assert.Equal(t, "closed", f.breaker.State().String())
}

func TestNewFetcher_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := NewFetcher(Settings{BaseURL: "not a url"}, nil, zap.NewNop())
	assert.Error(t, err)
}
