package reporting

import (
	"context"

	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type MetricsReporter interface {
	GetDailyMetrics(ctx context.Context) ([]domain.AggregatedMetric, error)
}

type Service struct {
	repo repository.DailyMetricsRepository
}

// NewService aceita repo nil: nesse caso toda leitura devolve ConnectionError
func NewService(repo repository.DailyMetricsRepository) MetricsReporter {
	return &Service{
		repo: repo,
	}
}

// GetDailyMetrics devolve gasto e cliques somados por (data, plataforma),
// ordenados por data e, no mesmo dia, por plataforma
func (s *Service) GetDailyMetrics(ctx context.Context) ([]domain.AggregatedMetric, error) {
	logger := log.ForContext(ctx)

	if s.repo == nil {
		logger.Warn("reporting: metrics store not configured")
		return nil, NewConnectionError(ErrStoreNotConfigured, nil, apiErrors.ErrCommunication, "DATABASE_URL não definida")
	}

	if err := s.repo.Ping(ctx); err != nil {
		logger.WithError(err).Error("reporting: metrics store unreachable")
		return nil, NewConnectionError(ErrStoreUnreachable, err, apiErrors.ErrCommunication, "Falha ao conectar ao banco de dados")
	}

	metrics, err := s.repo.AggregateDaily(ctx)
	if err != nil {
		logger.WithError(err).Error("reporting: aggregation query failed")
		return nil, NewQueryError(ErrAggregationFailed, err, apiErrors.ErrDatabaseOperation, "Falha ao agregar métricas diárias")
	}

	logger.WithField("rows", len(metrics)).Debug("reporting: daily metrics aggregated")

	return metrics, nil
}
