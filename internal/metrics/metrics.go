// Package metrics holds the Prometheus collectors of the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors. Every vector is curried with the service
// label, so callers pass only the remaining labels.
type Metrics struct {
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds prometheus.ObserverVec
	BatchResolutionsTotal      *prometheus.CounterVec
	TicketStatusChangesTotal   *prometheus.CounterVec
	ImageGenerationsTotal      *prometheus.CounterVec
}

// Batch resolution sources.
const (
	SourceICloud = "icloud"
	SourceProxy  = "proxy"
	SourceSocial = "social"
	SourceFresh  = "fresh"
)

// New creates the collectors and registers them with reg.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	batchResolutions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_resolutions_total",
			Help: "Total number of batch id resolutions by source.",
		},
		[]string{"service", "source"},
	)
	statusChanges := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_status_changes_total",
			Help: "Total number of moderation status changes.",
		},
		[]string{"service", "kind", "status"},
	)
	imageGenerations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_generations_total",
			Help: "Total number of character image generation attempts.",
		},
		[]string{"service", "result"},
	)

	reg.MustRegister(httpRequests, httpDuration, batchResolutions, statusChanges, imageGenerations)

	labels := prometheus.Labels{"service": serviceName}
	return &Metrics{
		HTTPRequestsTotal:          httpRequests.MustCurryWith(labels),
		HTTPRequestDurationSeconds: httpDuration.MustCurryWith(labels),
		BatchResolutionsTotal:      batchResolutions.MustCurryWith(labels),
		TicketStatusChangesTotal:   statusChanges.MustCurryWith(labels),
		ImageGenerationsTotal:      imageGenerations.MustCurryWith(labels),
	}
}

// NewNop returns collectors that are not registered anywhere. Used by tests
// and tools that do not expose metrics.
func NewNop() *Metrics {
	return New("nop", prometheus.NewRegistry())
}

// BatchResolved counts one batch resolution.
func (m *Metrics) BatchResolved(source string) {
	if m == nil {
		return
	}
	m.BatchResolutionsTotal.WithLabelValues(source).Inc()
}

// TicketStatusChanged counts one persisted moderation status change.
func (m *Metrics) TicketStatusChanged(kind, status string) {
	if m == nil {
		return
	}
	m.TicketStatusChangesTotal.WithLabelValues(kind, status).Inc()
}

// ImageGenerated counts one image generation attempt by result.
func (m *Metrics) ImageGenerated(result string) {
	if m == nil {
		return
	}
	m.ImageGenerationsTotal.WithLabelValues(result).Inc()
}
