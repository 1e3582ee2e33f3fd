// Package metrics exposes Prometheus counters for search actions.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeInputMissing = "input_missing"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

// Upstream service labels.
const (
	ServiceGeocoder = "geocoder"
	ServicePOI      = "poi"
)

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bizfinder_searches_total",
			Help: "Total search actions by outcome",
		},
		[]string{"outcome"},
	)

	newPlacesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bizfinder_new_places_total",
			Help: "Total places reported as new",
		},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bizfinder_upstream_request_duration_seconds",
			Help:    "Duration of geocoder and POI service calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 60},
		},
		[]string{"service"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchesTotal, newPlacesTotal, upstreamDuration)
	})
}

// RecordSearch counts one finished search action.
func RecordSearch(outcome string) {
	searchesTotal.WithLabelValues(outcome).Inc()
}

// RecordNewPlaces adds n to the new places counter.
func RecordNewPlaces(n int) {
	newPlacesTotal.Add(float64(n))
}

// ObserveUpstream records the duration of one upstream call.
func ObserveUpstream(service string, d time.Duration) {
	upstreamDuration.WithLabelValues(service).Observe(d.Seconds())
}
