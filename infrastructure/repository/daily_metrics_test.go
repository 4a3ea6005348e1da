package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

func newTestRepository(t *testing.T) (DailyMetricsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDailyMetricsRepository(postgres.NewConnectionFromDB(db)), mock
}

func unifiedRecord(date, platform string, clicks int64, spend string) domain.UnifiedMetricRecord {
	return domain.UnifiedMetricRecord{
		Date:     date,
		Platform: platform,
		Clicks:   clicks,
		SpendUSD: decimal.RequireFromString(spend),
	}
}

func TestReplaceAll(t *testing.T) {
	repo, mock := newTestRepository(t)

	records := []domain.UnifiedMetricRecord{
		unifiedRecord("2024-06-01", domain.PlatformFacebook, 300, "1000.00"),
		unifiedRecord("2024-06-01", domain.PlatformGoogle, 200, "500.00"),
	}

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE IF EXISTS daily_marketing_metrics").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE daily_marketing_metrics").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO daily_marketing_metrics \(date,platform,clicks,spend_usd\) VALUES \(\$1,\$2,\$3,\$4\),\(\$5,\$6,\$7,\$8\)`).
		WithArgs(
			"2024-06-01", domain.PlatformFacebook, int64(300), records[0].SpendUSD,
			"2024-06-01", domain.PlatformGoogle, int64(200), records[1].SpendUSD,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	loaded, err := repo.ReplaceAll(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_Batches(t *testing.T) {
	repo, mock := newTestRepository(t)

	records := make([]domain.UnifiedMetricRecord, insertBatchSize+1)
	for i := range records {
		records[i] = unifiedRecord("2024-06-01", domain.PlatformFacebook, 1, "1")
	}

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO daily_marketing_metrics").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO daily_marketing_metrics").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	loaded, err := repo.ReplaceAll(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, int64(insertBatchSize+1), loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_EmptyRecordsLeavesEmptyTable(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	loaded, err := repo.ReplaceAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_RollbackOnInsertFailure(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO daily_marketing_metrics").
		WillReturnError(&pq.Error{Code: "22003", Message: "numeric field overflow"})
	mock.ExpectRollback()

	loaded, err := repo.ReplaceAll(context.Background(), []domain.UnifiedMetricRecord{
		unifiedRecord("2024-06-01", domain.PlatformGoogle, 1, "1"),
	})

	require.Error(t, err)
	assert.Zero(t, loaded)
	assert.Contains(t, err.Error(), "22003")
	assert.Contains(t, err.Error(), "numeric_value_out_of_range")

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateDaily(t *testing.T) {
	repo, mock := newTestRepository(t)

	day1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"date", "platform", "total_spend", "total_clicks"}).
		AddRow(day1, domain.PlatformFacebook, "1000.00", int64(300)).
		AddRow(day1, domain.PlatformGoogle, "500.00", int64(200)).
		AddRow(day2, domain.PlatformFacebook, "1420.37", int64(512))

	mock.ExpectQuery(`SELECT date, platform, SUM\(spend_usd\) AS total_spend, SUM\(clicks\) AS total_clicks FROM daily_marketing_metrics GROUP BY date, platform ORDER BY date ASC, platform ASC`).
		WillReturnRows(rows)

	metrics, err := repo.AggregateDaily(context.Background())
	require.NoError(t, err)
	require.Len(t, metrics, 3)

	assert.Equal(t, "2024-06-01", metrics[0].Date)
	assert.Equal(t, domain.PlatformFacebook, metrics[0].Platform)
	assert.True(t, decimal.RequireFromString("1000").Equal(metrics[0].TotalSpend))
	assert.Equal(t, int64(300), metrics[0].TotalClicks)

	assert.Equal(t, domain.PlatformGoogle, metrics[1].Platform)
	assert.Equal(t, "2024-06-02", metrics[2].Date)
	assert.Equal(t, "1420.37", metrics[2].TotalSpend.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateDaily_EmptyTable(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM daily_marketing_metrics").
		WillReturnRows(sqlmock.NewRows([]string{"date", "platform", "total_spend", "total_clicks"}))

	metrics, err := repo.AggregateDaily(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, metrics)
	assert.Empty(t, metrics)
}

func TestAggregateDaily_QueryError(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM daily_marketing_metrics").
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "daily_marketing_metrics" does not exist`})

	metrics, err := repo.AggregateDaily(context.Background())
	require.Error(t, err)
	assert.Nil(t, metrics)
	assert.Contains(t, err.Error(), "undefined_table")
}
