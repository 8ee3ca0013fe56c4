package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchAttempts *prometheus.CounterVec
	analyses      *prometheus.CounterVec
	notifications *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investment_api_fetch_attempts_total",
				Help: "Total provider fetch attempts by outcome",
			},
			[]string{"symbol", "outcome"},
		),
		analyses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investment_api_analyses_total",
				Help: "Total completed analyses by classification",
			},
			[]string{"classification"},
		),
		notifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investment_api_notifications_total",
				Help: "Total notification sends by channel and status",
			},
			[]string{"channel", "status"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "investment_api_last_price",
				Help: "Last analyzed closing price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "investment_api_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetchAttempt records one provider attempt and its outcome.
func (r *Recorder) RecordFetchAttempt(symbol, outcome string) {
	r.fetchAttempts.WithLabelValues(symbol, outcome).Inc()
}

// RecordAnalysis records a finished analysis by classification label.
func (r *Recorder) RecordAnalysis(classification string) {
	r.analyses.WithLabelValues(classification).Inc()
}

// RecordNotification records a notification send result.
func (r *Recorder) RecordNotification(channel, status string) {
	r.notifications.WithLabelValues(channel, status).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
