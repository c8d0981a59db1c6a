package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	importRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_import_runs_total",
			Help: "Total number of catalog import runs by result.",
		},
		[]string{"result"},
	)
	importedProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_imported_products",
			Help: "Number of products installed by the last successful import.",
		},
	)
	importDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_import_duration_seconds",
			Help:    "Histogram of full import run durations.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(importRunsTotal)
	prometheus.MustRegister(importedProducts)
	prometheus.MustRegister(importDuration)
}

// RecordRequest записывает метрики одного HTTP-запроса.
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	statusLabel := http.StatusText(status)
	if statusLabel == "" {
		statusLabel = "unknown"
	}
	httpRequestsTotal.WithLabelValues(method, endpoint, statusLabel).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, statusLabel).Observe(duration.Seconds())
}

// RecordImport записывает результат одного запуска импорта каталога.
func RecordImport(ok bool, imported int, duration time.Duration) {
	result := "success"
	if !ok {
		result = "failure"
	}
	importRunsTotal.WithLabelValues(result).Inc()
	importDuration.Observe(duration.Seconds())
	if ok {
		importedProducts.Set(float64(imported))
	}
}

// Handler отдаёт стандартный prometheus-эндпоинт.
func Handler() http.Handler {
	return promhttp.Handler()
}
