package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/etl"
)

// ETLSyncConfig representa a configuração do agendador de recarga da tabela diária
type ETLSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ETLSyncService agenda e executa a recarga completa de daily_marketing_metrics
type ETLSyncService struct {
	scheduler *gocron.Scheduler
	config    ETLSyncConfig
	pipeline  etl.Runner
	baseCtx   context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.ETLRunSummary
	lastError           string
}

// NewETLSyncService cria uma nova instância do serviço de recarga
func NewETLSyncService(pipeline etl.Runner, appConfig *config.Config) *ETLSyncService {
	syncConfig := ETLSyncConfig{
		CronSchedule: appConfig.ETLSync.CronSchedule,
		SyncEnabled:  appConfig.ETLSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador ETL carregada")

	return &ETLSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		pipeline:  pipeline,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *ETLSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada da tabela diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador ETL")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runETL()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga ETL: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador ETL")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca o início de uma execução; devolve false se já houver uma em andamento
func (s *ETLSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runETL executa uma carga completa, ignorando o disparo se já houver outra rodando
func (s *ETLSyncService) runETL() {
	if !s.tryAcquire() {
		logrus.Info("Recarga ETL já em andamento, ignorando")
		return
	}
	s.execute()
}

func (s *ETLSyncService) execute() {
	summary, err := s.pipeline.Run(s.baseCtx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
	s.lastSummary = summary
}

// TriggerManualSync inicia manualmente uma recarga em background.
// Devolve false quando outra execução já está em andamento.
func (s *ETLSyncService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("Recarga ETL já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga ETL manual")
	go s.execute()
	return true
}

// IsRunning indica se existe uma carga em andamento
func (s *ETLSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ETLSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               s.lastSummary,
		"last_error":             s.lastError,
	}
}
