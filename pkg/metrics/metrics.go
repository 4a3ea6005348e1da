// Package metrics concentra os indicadores Prometheus da API e da carga ETL
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketing_metrics"

// Status possíveis de uma execução ETL
const (
	ETLStatusSuccess = "success"
	ETLStatusFailure = "failure"
)

// Requisições HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP (segundos)",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// Carga ETL
var (
	ETLRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "etl_runs_total",
			Help:      "Total de execuções ETL por resultado",
		},
		[]string{"status"},
	)

	ETLRecordsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "etl_records_loaded",
			Help:      "Total de linhas gravadas em daily_marketing_metrics",
		},
	)

	ETLRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "etl_run_duration_seconds",
			Help:      "Duração de cada execução ETL (segundos)",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)
)

// RecordETLRun registra o resultado de uma execução
func RecordETLRun(status string, loaded int64, seconds float64) {
	ETLRunsTotal.WithLabelValues(status).Inc()
	ETLRunDuration.Observe(seconds)
	if loaded > 0 {
		ETLRecordsLoaded.Add(float64(loaded))
	}
}
