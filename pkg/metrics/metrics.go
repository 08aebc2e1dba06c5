package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик консоли
type Metrics struct {
	// Входящие запросы к консоли
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Исходящие запросы к backend клиники
	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в reg
// serviceName попадает в const label service
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "console_http_requests_total",
			Help:        "Total number of HTTP requests served by the console",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "console_http_request_duration_seconds",
			Help:        "Duration of HTTP requests served by the console",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BackendRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "console_backend_requests_total",
			Help:        "Total number of requests sent to the clinic backend",
			ConstLabels: labels,
		}, []string{"code", "method"}),

		BackendRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "console_backend_request_duration_seconds",
			Help:        "Duration of requests sent to the clinic backend",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// InstrumentRoundTripper оборачивает транспорт клиента backend
func (m *Metrics) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(
		m.BackendRequestsTotal,
		promhttp.InstrumentRoundTripperDuration(m.BackendRequestDuration, next),
	)
}
