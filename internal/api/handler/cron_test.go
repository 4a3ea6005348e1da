package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-metrics-api/internal/api/handler/router"
)

type fakeSyncer struct {
	accept   bool
	triggers int
}

func (f *fakeSyncer) TriggerManualSync() bool {
	f.triggers++
	return f.accept
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "sync_running": !f.accept}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		accept       bool
		wantStatus   int
		wantTriggers int
	}{
		{"Recarga ETL aceita", "/v1/cron/etl/run", true, http.StatusAccepted, 1},
		{"Recarga ETL já em andamento", "/v1/cron/etl/run", false, http.StatusConflict, 1},
		{"Tipo desconhecido", "/v1/cron/meta/run", true, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{accept: tt.accept}
			rt := router.New(router.WithRoutes(CronJobs(syncer)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggers, syncer.triggers)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(&fakeSyncer{accept: true})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, CronStatusPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["etl"]["sync_enabled"])
	assert.Equal(t, false, body["etl"]["sync_running"])
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthcheckPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
