package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

type idleSyncer struct{}

func (idleSyncer) TriggerManualSync() bool   { return true }
func (idleSyncer) GetStatus() map[string]any { return map[string]any{} }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000"},
		Cors:   config.Cors{AllowedOrigins: []string{"*"}},
	}
}

func TestNewHandler_DegradedModeStillServes(t *testing.T) {
	log.SetupTestLogger()
	h := NewHandler(testConfig(), reporting.NewService(nil), idleSyncer{})

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/healthcheck", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/metrics", http.StatusInternalServerError},
		{http.MethodPost, "/v1/cron/etl/run", http.StatusAccepted},
		{http.MethodGet, "/v1/cron/status", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestNew_Address(t *testing.T) {
	srv, err := New(testConfig(), reporting.NewService(nil), idleSyncer{})
	assert.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)
}
