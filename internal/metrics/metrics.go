package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the panel backend. Each instance
// owns its registry so tests can build handlers without collisions.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	PasswordResets  *prometheus.CounterVec
	StatusUpdates   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "superadmin_request_duration_seconds",
			Help: "Duration of handled HTTP requests.",
		}, []string{"method", "path", "status"}),
		PasswordResets: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "superadmin_password_resets_total",
			Help: "Temporary passwords issued, by role.",
		}, []string{"role"}),
		StatusUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "superadmin_status_updates_total",
			Help: "Account status changes, by role.",
		}, []string{"role"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
