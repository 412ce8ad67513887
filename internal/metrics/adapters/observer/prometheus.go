package observer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

// PrometheusObserver counts fetch outcomes and passes.
type PrometheusObserver struct {
	fetches  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	passes   prometheus.Counter
	inFlight prometheus.Gauge
}

var _ ports.AggregationObserver = (*PrometheusObserver)(nil)

func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	o := &PrometheusObserver{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "analytics_account_fetches_total",
			Help: "Per-account metric fetches by outcome",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "analytics_account_fetch_duration_seconds",
			Help:    "Latency of per-account metric fetches",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "analytics_aggregation_passes_total",
			Help: "Completed aggregation passes",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "analytics_account_fetches_in_flight",
			Help: "Per-account fetches currently running",
		}),
	}
	reg.MustRegister(o.fetches, o.latency, o.passes, o.inFlight)
	return o
}

func (o *PrometheusObserver) FetchStarted(string, string, domain.Window) {
	o.inFlight.Inc()
}

func (o *PrometheusObserver) FetchResolved(_, _ string, _ int, took time.Duration) {
	o.inFlight.Dec()
	o.fetches.WithLabelValues("resolved").Inc()
	o.latency.WithLabelValues("resolved").Observe(took.Seconds())
}

func (o *PrometheusObserver) FetchFailed(_, _ string, _ error, took time.Duration) {
	o.inFlight.Dec()
	o.fetches.WithLabelValues("failed").Inc()
	o.latency.WithLabelValues("failed").Observe(took.Seconds())
}

func (o *PrometheusObserver) PassCompleted(string, int, int) {
	o.passes.Inc()
}
