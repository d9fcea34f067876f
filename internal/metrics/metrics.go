package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	succeeded = "succeeded"
	failed    = "failed"
)

// Observer is the process wide metrics tracker.
var Observer = NewMetrics()

func init() {
	prometheus.MustRegister(Observer.prometheus.collectors()...)
}

// Metrics tracks the progress of boosting runs.
type Metrics struct {
	prometheus Prometheus
}

// NewMetrics creates a new unregistered metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{prometheus: NewPrometheusMetrics()}
}

// Register registers the collectors with the given registerer.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range m.prometheus.collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Round tracks a completed boosting round.
func (m *Metrics) Round(rate, weight float64) {
	m.prometheus.Rounds.Inc()
	m.prometheus.Error.Observe(rate)
	m.prometheus.Confidence.Observe(weight)
}

// Degenerate tracks a round with a degenerate error rate.
func (m *Metrics) Degenerate() {
	m.prometheus.Degenerate.Inc()
}

// Trained tracks the end of a training run.
func (m *Metrics) Trained(d time.Duration, err error) {
	if err != nil {
		m.prometheus.Runs.WithLabelValues(failed).Inc()
		return
	}
	m.prometheus.Runs.WithLabelValues(succeeded).Inc()
	m.prometheus.Duration.Observe(d.Seconds())
}

// Predicted tracks a weighted majority prediction.
func (m *Metrics) Predicted() {
	m.prometheus.Predictions.Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
