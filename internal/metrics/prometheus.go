package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Folds *prometheus.CounterVec
	Runs  *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Folds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kfold",
				Name:      "folds",
			}, []string{"learner"}),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kfold",
				Name:      "runs",
			}, []string{"learner"}),
	}
}
