package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360/meshproto/errors"
)

// Registry manages registration and exposure of the protocol metrics.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	metrics            *Metrics
}

// NewRegistry creates a registry with the protocol metrics and Go
// runtime collectors registered.
func NewRegistry() (*Registry, error) {
	prometheusRegistry := prometheus.NewRegistry()
	metrics := NewMetrics()

	for _, collector := range metrics.collectors() {
		if err := prometheusRegistry.Register(collector); err != nil {
			return nil, errors.WrapFatal(err, "Registry", "NewRegistry", "register collector")
		}
	}

	prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		prometheusRegistry: prometheusRegistry,
		metrics:            metrics,
	}, nil
}

// Metrics returns the protocol metrics set.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Handler returns the scrape handler for this registry. Mounting it is
// the caller's concern; this package opens no listeners of its own.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{})
}
