package domain

import "time"

// ETLRunSummary resume uma execução completa de extract/transform/load
type ETLRunSummary struct {
	RunID           string    `json:"run_id"`
	FacebookRecords int       `json:"facebook_records"`
	GoogleRecords   int       `json:"google_records"`
	LoadedRecords   int64     `json:"loaded_records"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}
