package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/facebook"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/google"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/etl"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

type feedFlags struct {
	facebookFile string
	googleFile   string
}

func (f *feedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.facebookFile, "facebook", "", "CSV do Facebook (padrão: FACEBOOK_ADS_FILE)")
	cmd.Flags().StringVar(&f.googleFile, "google", "", "JSON do Google (padrão: GOOGLE_ADS_FILE)")
}

func (f *feedFlags) apply(cfg *config.Config) {
	if f.facebookFile != "" {
		cfg.Feeds.FacebookFile = f.facebookFile
	}
	if f.googleFile != "" {
		cfg.Feeds.GoogleFile = f.googleFile
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "etl",
		Short:         "Carga das métricas diárias de Facebook e Google",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(), newSnapshotCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	return cfg, nil
}

func newRunCmd() *cobra.Command {
	feeds := &feedFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extrai, normaliza e substitui a tabela daily_marketing_metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			feeds.apply(cfg)

			return runETL(cmd.Context(), cfg)
		},
	}

	feeds.register(cmd)
	return cmd
}

func runETL(ctx context.Context, cfg *config.Config) error {
	if !cfg.Database.IsConfigured() {
		return etl.ErrStoreNotConfigured
	}

	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		return err
	}

	pipeline := etl.NewPipeline(
		facebook.NewReader(cfg.Feeds.FacebookFile),
		google.NewReader(cfg.Feeds.GoogleFile),
		repository.NewDailyMetricsRepository(conn),
	)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":        summary.RunID,
		"facebook_rows": summary.FacebookRecords,
		"google_rows":   summary.GoogleRecords,
		"loaded_rows":   summary.LoadedRecords,
	}).Info("Carga concluída")

	return nil
}

func newSnapshotCmd() *cobra.Command {
	feeds := &feedFlags{}
	var outDir string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Grava o resultado normalizado em CSV, sem acessar o banco",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			feeds.apply(cfg)
			if outDir == "" {
				outDir = cfg.Feeds.SnapshotDir
			}

			pipeline := etl.NewPipeline(
				facebook.NewReader(cfg.Feeds.FacebookFile),
				google.NewReader(cfg.Feeds.GoogleFile),
				nil,
			)

			path, err := pipeline.Snapshot(cmd.Context(), outDir)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	feeds.register(cmd)
	cmd.Flags().StringVar(&outDir, "out", "", "Diretório de saída (padrão: SNAPSHOT_DIR)")
	return cmd
}
