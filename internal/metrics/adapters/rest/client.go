package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

var (
	ErrUpstreamStatus      = errors.New("upstream returned unexpected status")
	ErrUpstreamUnavailable = errors.New("upstream temporarily unavailable")
)

type Settings struct {
	BaseURL     string
	Token       string
	Timeout     time.Duration
	MaxFailures uint32        // consecutive failures before the breaker opens
	OpenTimeout time.Duration // how long the breaker stays open
}

// Fetcher calls the backend analytics API for one account at a time.
type Fetcher struct {
	baseURL *url.URL
	token   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

var _ ports.MetricsFetcherPort = (*Fetcher)(nil)

func NewFetcher(s Settings, client *http.Client, log *zap.Logger) (*Fetcher, error) {
	base, err := url.Parse(s.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", s.BaseURL)
	}
	if client == nil {
		timeout := s.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}

	f := &Fetcher{baseURL: base, token: s.Token, client: client, log: log}
	f.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "analytics-backend",
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return f, nil
}

type metricsEnvelope struct {
	Data []metricPayload `json:"data"`
}

type metricPayload struct {
	Key          string         `json:"key"`
	CurrentValue float64        `json:"currentValue"`
	History      []dailyPayload `json:"history"`
}

type dailyPayload struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// fetchResult carries errors that say nothing about backend health
// (4xx, caller cancellation) past the breaker without counting as failures.
type fetchResult struct {
	metrics []domain.Metric
	err     error
}

func (f *Fetcher) FetchAccountMetrics(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error) {
	out, err := f.breaker.Execute(func() (interface{}, error) {
		return f.do(ctx, accountID, window)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return nil, err
	}

	res := out.(fetchResult)
	return res.metrics, res.err
}

func (f *Fetcher) do(ctx context.Context, accountID string, window domain.Window) (fetchResult, error) {
	u := f.baseURL.JoinPath("accounts", accountID, "metrics")
	q := u.Query()
	q.Set("days", strconv.Itoa(int(window)))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fetchResult{err: err}, nil
	}
	req.Header.Set("Accept", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fetchResult{err: ctx.Err()}, nil
		}
		return fetchResult{}, fmt.Errorf("fetch account metrics: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fetchResult{}, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fetchResult{err: fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)}, nil
	}

	var env metricsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fetchResult{}, fmt.Errorf("decode account metrics: %w", err)
	}

	metrics := make([]domain.Metric, 0, len(env.Data))
	for _, m := range env.Data {
		dm := domain.Metric{
			Key:          m.Key,
			CurrentValue: m.CurrentValue,
			History:      make([]domain.DailyMetric, 0, len(m.History)),
		}
		for _, p := range m.History {
			dm.History = append(dm.History, domain.DailyMetric{Date: p.Date, Value: p.Value})
		}
		metrics = append(metrics, dm)
	}

	return fetchResult{metrics: metrics}, nil
}
