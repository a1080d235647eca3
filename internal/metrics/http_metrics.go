// Package metrics содержит метрики HTTP-сервера в формате Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics хранит счетчики и гистограммы HTTP-запросов.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	qrGenerated     *prometheus.CounterVec
}

// NewHTTPMetrics регистрирует метрики в реестре по умолчанию.
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "The total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distribution",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		qrGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qr_codes_generated_total",
				Help: "The total number of generated qr codes by format",
			},
			[]string{"format"},
		),
	}
}

// IncQRGenerated увеличивает счетчик сгенерированных QR-кодов.
func (m *HTTPMetrics) IncQRGenerated(format string) {
	m.qrGenerated.WithLabelValues(format).Inc()
}

// Middleware собирает метрики по каждому запросу. Путь берется из
// шаблона маршрута chi, чтобы не плодить метки на каждый UUID.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = r.URL.Path
		}
		m.requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
