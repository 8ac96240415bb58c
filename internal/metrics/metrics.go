package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Folds, Observer.prometheus.Runs)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Fold counts one trained and evaluated fold for the given learner.
func (m *Metrics) Fold(labels ...string) {
	m.prometheus.Folds.WithLabelValues(labels...).Inc()
}

// Run counts one completed k-fold run for the given learner.
func (m *Metrics) Run(labels ...string) {
	m.prometheus.Runs.WithLabelValues(labels...).Inc()
}
