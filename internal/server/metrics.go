// Package server exposes Prometheus metrics for streaming conversion runs.
// The endpoint is opt-in via --metrics-addr and only meaningful while a run
// is in flight; the default one-shot invocation never starts it.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/hexcalc/internal/convert"
	"github.com/agbru/hexcalc/internal/orchestration"
)

// Metrics holds the Prometheus collectors for the conversion pipeline and
// the HTTP handler that serves them. Each instance carries its own registry
// so that construction is repeatable (no global collector collisions).
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	recordsTotal  prometheus.Counter
	activeWorkers prometheus.Gauge
	valueBuckets  prometheus.Histogram
}

// Verify that Metrics can instrument the pipeline.
var _ orchestration.MetricsObserver = (*Metrics)(nil)

// NewMetrics creates the collector set and its serving handler.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		recordsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hexcalc",
			Name:      "records_converted_total",
			Help:      "Total number of input values converted to display records.",
		}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hexcalc",
			Name:      "active_workers",
			Help:      "Number of conversion workers currently running.",
		}),
		valueBuckets: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hexcalc",
			Name:      "normalized_value",
			Help:      "Distribution of normalized values in [0, 255].",
			Buckets:   prometheus.LinearBuckets(0, 32, 9),
		}),
	}

	registry.MustRegister(m.recordsTotal, m.activeWorkers, m.valueBuckets)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveRecords counts a converted batch and samples its normalized values.
func (m *Metrics) ObserveRecords(records []convert.Record) {
	m.recordsTotal.Add(float64(len(records)))
	for _, r := range records {
		m.valueBuckets.Observe(float64(r.Value))
	}
}

// WorkerStarted increments the active worker gauge.
func (m *Metrics) WorkerStarted() {
	m.activeWorkers.Inc()
}

// WorkerStopped decrements the active worker gauge.
func (m *Metrics) WorkerStopped() {
	m.activeWorkers.Dec()
}

// Handler returns the HTTP handler serving the /metrics payload.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Serve runs an HTTP server exposing /metrics on addr until ctx is canceled.
// It is intended to run in a goroutine alongside a streaming conversion; the
// server shuts down gracefully when the run ends.
//
// Parameters:
//   - ctx: Cancellation stops the server.
//   - addr: The listen address, e.g. "127.0.0.1:9090".
//
// Returns:
//   - error: A listen or shutdown error; nil on clean shutdown.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}
