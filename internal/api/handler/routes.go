package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/marketing-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/reporting"
)

const (
	HealthcheckPath  = "/healthcheck"
	PrometheusPath   = "/metrics"
	DailyMetricsPath = "/api/metrics"
	CronRunPath      = "/v1/cron/:type/run"
	CronStatusPath   = "/v1/cron/status"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    HealthcheckPath,
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Prometheus() []router.Route {
	return []router.Route{
		{
			Path:    PrometheusPath,
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func DailyMetrics(service reporting.MetricsReporter) []router.Route {
	return []router.Route{
		{
			Path:    DailyMetricsPath,
			Method:  http.MethodGet,
			Handler: GetDailyMetrics(service),
		},
	}
}

func CronJobs(etlSync ETLSyncer) []router.Route {
	return []router.Route{
		{
			Path:    CronRunPath,
			Method:  http.MethodPost,
			Handler: RunCronJob(etlSync),
		},
		{
			Path:    CronStatusPath,
			Method:  http.MethodGet,
			Handler: GetCronStatus(etlSync),
		},
	}
}
