package etl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/normalizing"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
	"github.com/vfg2006/marketing-metrics-api/pkg/metrics"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

var ErrStoreNotConfigured = errors.New("DATABASE_URL não definida: carga indisponível")

type FacebookSource interface {
	Read(ctx context.Context) ([]domain.RawFacebookRecord, error)
}

type GoogleSource interface {
	Read(ctx context.Context) ([]domain.RawGoogleRecord, error)
}

type Runner interface {
	Run(ctx context.Context) (*domain.ETLRunSummary, error)
}

type Pipeline struct {
	facebook FacebookSource
	google   GoogleSource
	repo     repository.DailyMetricsRepository
	now      func() time.Time
}

// NewPipeline aceita repo nil; nesse caso só Transform e Snapshot funcionam
func NewPipeline(facebook FacebookSource, google GoogleSource, repo repository.DailyMetricsRepository) *Pipeline {
	return &Pipeline{
		facebook: facebook,
		google:   google,
		repo:     repo,
		now:      time.Now,
	}
}

type extracted struct {
	facebook []domain.RawFacebookRecord
	google   []domain.RawGoogleRecord
}

func (p *Pipeline) extract(ctx context.Context) (*extracted, error) {
	facebook, err := p.facebook.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler feed do Facebook: %w", err)
	}

	google, err := p.google.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler feed do Google: %w", err)
	}

	return &extracted{facebook: facebook, google: google}, nil
}

// Transform lê os dois feeds e devolve os registros unificados, sem tocar no banco
func (p *Pipeline) Transform(ctx context.Context) ([]domain.UnifiedMetricRecord, error) {
	raw, err := p.extract(ctx)
	if err != nil {
		return nil, err
	}

	return normalizing.Normalize(raw.facebook, raw.google)
}

// Run executa extração, transformação e a substituição completa da tabela
func (p *Pipeline) Run(ctx context.Context) (*domain.ETLRunSummary, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}

	summary := &domain.ETLRunSummary{
		RunID:     runID,
		StartedAt: p.now(),
	}
	logger := log.ForContext(ctx).WithField("run_id", runID)
	logger.Info("etl: iniciando carga")

	err = p.run(ctx, summary)
	summary.FinishedAt = p.now()
	elapsed := summary.FinishedAt.Sub(summary.StartedAt).Seconds()

	if err != nil {
		metrics.RecordETLRun(metrics.ETLStatusFailure, 0, elapsed)
		logger.WithError(err).Error("etl: carga falhou")
		return nil, err
	}

	metrics.RecordETLRun(metrics.ETLStatusSuccess, summary.LoadedRecords, elapsed)
	logger.WithFields(log.Fields{
		"etl_facebook_records": summary.FacebookRecords,
		"etl_google_records":   summary.GoogleRecords,
		"etl_loaded_records":   summary.LoadedRecords,
	}).Infof("etl: carga concluída em %.2fs", elapsed)

	return summary, nil
}

func (p *Pipeline) run(ctx context.Context, summary *domain.ETLRunSummary) error {
	if p.repo == nil {
		return ErrStoreNotConfigured
	}

	raw, err := p.extract(ctx)
	if err != nil {
		return err
	}
	summary.FacebookRecords = len(raw.facebook)
	summary.GoogleRecords = len(raw.google)

	records, err := normalizing.Normalize(raw.facebook, raw.google)
	if err != nil {
		return fmt.Errorf("erro ao normalizar registros: %w", err)
	}

	loaded, err := p.repo.ReplaceAll(ctx, records)
	if err != nil {
		return fmt.Errorf("erro ao gravar métricas diárias: %w", err)
	}
	summary.LoadedRecords = loaded

	return nil
}
