// Package metrics registra los collectors de Prometheus del servicio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "horse_registry"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// PedigreeRejections cuenta creates/updates rechazados por tipo de error.
	PedigreeRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pedigree_rejections_total",
		Help:      "Horse writes rejected by the pedigree validator.",
	}, []string{"operation", "kind"})

	FamilyTreeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "family_tree_ancestors",
		Help:      "Number of ancestor rows fetched per family tree request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
