package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

const (
	dailyMetricsTable = "daily_marketing_metrics"

	// Limite de linhas por INSERT; 4 colunas por linha ficam bem abaixo do máximo de parâmetros do postgres
	insertBatchSize = 500
)

var createDailyMetricsTable = `CREATE TABLE ` + dailyMetricsTable + ` (
	date DATE NOT NULL,
	platform TEXT NOT NULL,
	clicks INTEGER NOT NULL,
	spend_usd NUMERIC NOT NULL
)`

//go:generate mockgen -source=daily_metrics.go -destination=mocks/daily_metrics.go -package=mocks
type DailyMetricsRepository interface {
	Ping(ctx context.Context) error
	ReplaceAll(ctx context.Context, records []domain.UnifiedMetricRecord) (int64, error)
	AggregateDaily(ctx context.Context) ([]domain.AggregatedMetric, error)
}

type dailyMetricsRepository struct {
	conn postgres.Conn
}

func NewDailyMetricsRepository(conn postgres.Conn) DailyMetricsRepository {
	return &dailyMetricsRepository{
		conn: conn,
	}
}

func (r *dailyMetricsRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// ReplaceAll recria a tabela e insere todos os registros numa única transação.
// Se qualquer passo falhar a tabela anterior continua intacta.
func (r *dailyMetricsRepository) ReplaceAll(ctx context.Context, records []domain.UnifiedMetricRecord) (int64, error) {
	var loaded int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+dailyMetricsTable); err != nil {
			return fmt.Errorf("erro ao remover tabela %s: %w", dailyMetricsTable, describePQError(err))
		}

		if _, err := tx.ExecContext(ctx, createDailyMetricsTable); err != nil {
			return fmt.Errorf("erro ao criar tabela %s: %w", dailyMetricsTable, describePQError(err))
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(records) {
				end = len(records)
			}

			affected, err := r.insertBatch(ctx, tx, records[start:end])
			if err != nil {
				return fmt.Errorf("erro ao inserir registros %d-%d: %w", start, end-1, err)
			}
			loaded += affected
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return loaded, nil
}

func (r *dailyMetricsRepository) insertBatch(ctx context.Context, q postgres.Queryer, batch []domain.UnifiedMetricRecord) (int64, error) {
	builder := squirrel.StatementBuilder.
		Insert(dailyMetricsTable).
		Columns("date", "platform", "clicks", "spend_usd").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range batch {
		builder = builder.Values(record.Date, record.Platform, record.Clicks, record.SpendUSD)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, describePQError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected, nil
}

// AggregateDaily soma gasto e cliques por (data, plataforma), ordenado por data e depois plataforma
func (r *dailyMetricsRepository) AggregateDaily(ctx context.Context) ([]domain.AggregatedMetric, error) {
	query, args, err := squirrel.
		Select("date", "platform", "SUM(spend_usd) AS total_spend", "SUM(clicks) AS total_clicks").
		From(dailyMetricsTable).
		GroupBy("date", "platform").
		OrderBy("date ASC", "platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", describePQError(err))
	}
	defer rows.Close()

	metrics := make([]domain.AggregatedMetric, 0)
	for rows.Next() {
		var (
			date   time.Time
			metric domain.AggregatedMetric
		)

		if err := rows.Scan(&date, &metric.Platform, &metric.TotalSpend, &metric.TotalClicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}

		metric.Date = date.Format(time.DateOnly)
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

// describePQError acrescenta o código SQLSTATE quando o erro vem do driver
func describePQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("postgres %s (%s): %w", pqErr.Code, pqErr.Code.Name(), err)
	}
	return err
}
