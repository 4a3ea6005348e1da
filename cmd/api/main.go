package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/facebook"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/google"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/api"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/scheduler"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/etl"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem banco a API continua no ar; /api/metrics responde erro de conexão
	var metricsRepo repository.DailyMetricsRepository
	if pgConn := pgconn(ctx, cfg.Database); pgConn != nil {
		defer pgConn.Close()
		metricsRepo = repository.NewDailyMetricsRepository(pgConn)
	}

	reportingService := reporting.NewService(metricsRepo)

	pipeline := etl.NewPipeline(
		facebook.NewReader(cfg.Feeds.FacebookFile),
		google.NewReader(cfg.Feeds.GoogleFile),
		metricsRepo,
	)

	etlSyncService := scheduler.NewETLSyncService(pipeline, cfg)
	if err := etlSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador ETL")
	} else {
		logrus.Info("Agendador ETL iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, etlSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre o pool do PostgreSQL. Devolve nil quando DATABASE_URL não está definida;
// se o banco não responder, apenas avisa e segue.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	if !dbConfig.IsConfigured() {
		logrus.Warn("DATABASE_URL não definida: API em modo degradado, /api/metrics responderá erro de conexão")
		return nil
	}

	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir conexão com PostgreSQL")
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL inacessível no momento; as requisições tentarão novamente")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
