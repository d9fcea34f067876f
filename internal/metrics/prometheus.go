package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "boost"

// Prometheus holds the collectors exported by the boosting runs.
type Prometheus struct {
	Rounds      prometheus.Counter
	Degenerate  prometheus.Counter
	Runs        *prometheus.CounterVec
	Error       prometheus.Histogram
	Confidence  prometheus.Histogram
	Duration    prometheus.Histogram
	Predictions prometheus.Counter
}

// NewPrometheusMetrics creates the boosting collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Completed boosting rounds.",
		}),
		Degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degenerate_rounds_total",
			Help:      "Rounds whose weighted error was 0 or 1.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Training runs by outcome.",
		}, []string{"status"}),
		Error: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "weighted_error",
			Help:      "Weighted error of each round hypothesis.",
			Buckets:   prometheus.LinearBuckets(0.05, 0.05, 19),
		}),
		Confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hypothesis_weight",
			Help:      "Voting weight of each round hypothesis.",
			Buckets:   prometheus.LinearBuckets(-5, 0.5, 21),
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "training_seconds",
			Help:      "Duration of successful training runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		Predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Weighted majority predictions.",
		}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.Rounds,
		p.Degenerate,
		p.Runs,
		p.Error,
		p.Confidence,
		p.Duration,
		p.Predictions,
	}
}
