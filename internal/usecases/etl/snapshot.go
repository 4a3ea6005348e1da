package etl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

const SnapshotFileName = "etl_transformed.csv"

var snapshotHeader = []string{"date", "platform", "clicks", "spend_usd"}

// Snapshot grava o resultado da transformação em dir/etl_transformed.csv, sem tocar no banco
func (p *Pipeline) Snapshot(ctx context.Context, dir string) (string, error) {
	records, err := p.Transform(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
	}

	path := filepath.Join(dir, SnapshotFileName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar snapshot %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteSnapshot(file, records); err != nil {
		return "", fmt.Errorf("erro ao escrever snapshot %s: %w", path, err)
	}

	log.ForContext(ctx).WithField("etl_snapshot_rows", len(records)).Infof("etl: snapshot gravado em %s", path)

	return path, nil
}

// WriteSnapshot escreve os registros unificados em CSV, com cabeçalho
func WriteSnapshot(w io.Writer, records []domain.UnifiedMetricRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(snapshotHeader); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			record.Date,
			record.Platform,
			strconv.FormatInt(record.Clicks, 10),
			record.SpendUSD.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
