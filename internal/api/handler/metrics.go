package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DailyMetricResponse é a linha devolvida ao dashboard
type DailyMetricResponse struct {
	Date        string  `json:"date"`
	Platform    string  `json:"platform"`
	TotalSpend  float64 `json:"total_spend"`
	TotalClicks int64   `json:"total_clicks"`
}

type DailyMetricsResponse struct {
	Metrics []DailyMetricResponse `json:"metrics"`
}

func toDailyMetricsResponse(metrics []domain.AggregatedMetric) DailyMetricsResponse {
	response := DailyMetricsResponse{Metrics: make([]DailyMetricResponse, 0, len(metrics))}
	for _, m := range metrics {
		response.Metrics = append(response.Metrics, DailyMetricResponse{
			Date:        m.Date,
			Platform:    m.Platform,
			TotalSpend:  m.TotalSpend.InexactFloat64(),
			TotalClicks: m.TotalClicks,
		})
	}
	return response
}

// GetDailyMetrics responde GET /api/metrics com gasto e cliques por dia e plataforma
func GetDailyMetrics(service reporting.MetricsReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: fetching daily aggregated metrics")

		metrics, err := service.GetDailyMetrics(r.Context())
		if err != nil {
			apiErr := describeReportingError(err)
			logger.WithFields(log.Fields{
				"code":  apiErr.Code,
				"error": err.Error(),
			}).Error("metrics: failed to aggregate daily metrics")

			apiErrors.WriteErrorWithStatus(w, http.StatusInternalServerError, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		logger.WithField("rows", len(metrics)).Debug("metrics: daily metrics aggregated")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toDailyMetricsResponse(metrics)); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}

func describeReportingError(err error) apiErrors.APIError {
	var connErr *reporting.ConnectionError
	if errors.As(err, &connErr) {
		return apiErrors.FromError(connErr, connErr.Code)
	}

	var queryErr *reporting.QueryError
	if errors.As(err, &queryErr) {
		return apiErrors.FromError(queryErr, queryErr.Code)
	}

	return apiErrors.FromError(err, apiErrors.ErrInternalServer)
}
