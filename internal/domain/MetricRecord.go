package domain

import "github.com/shopspring/decimal"

// UnifiedMetricRecord é a linha canônica persistida em daily_marketing_metrics.
// SpendUSD está sempre em dólares e Date sempre no formato YYYY-MM-DD.
type UnifiedMetricRecord struct {
	Date     string          `json:"date"`
	Platform string          `json:"platform"`
	Clicks   int64           `json:"clicks"`
	SpendUSD decimal.Decimal `json:"spend_usd"`
}

// AggregatedMetric é o total diário por plataforma calculado sob demanda
type AggregatedMetric struct {
	Date        string
	Platform    string
	TotalSpend  decimal.Decimal
	TotalClicks int64
}
