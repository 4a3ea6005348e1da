package google

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

const sampleJSON = `[
	{"campaignId": "0b6c7f1e-3f1d-4b8e-9a59-6a8f3e0d2c11", "timestamp": "2024-06-01T00:00:00", "source_platform": "Google", "clickCount": 200, "costInCents": 50000},
	{"campaignId": "a3e2f9d0-77c4-4f0e-8a2b-1b9c0e5d7f42", "timestamp": "2024-06-02T00:00:00", "source_platform": "Google", "clickCount": 315, "costInCents": 98765.0}
]`

func TestParse(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "0b6c7f1e-3f1d-4b8e-9a59-6a8f3e0d2c11", records[0].CampaignID)
	assert.Equal(t, "2024-06-01T00:00:00", records[0].Timestamp)
	assert.Equal(t, domain.PlatformGoogle, records[0].SourcePlatform)
	assert.Equal(t, int64(200), *records[0].ClickCount)
	assert.Equal(t, int64(50000), *records[0].CostInCents)

	assert.Equal(t, int64(98765), *records[1].CostInCents)
}

func TestParse_MissingFieldsStayNil(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader(`[{"timestamp": "2024-06-01T00:00:00"}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].ClickCount)
	assert.Nil(t, records[0].CostInCents)
}

func TestParse_NullFieldsStayNil(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader(`[{"clickCount": null, "costInCents": null}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].ClickCount)
	assert.Nil(t, records[0].CostInCents)
}

func TestParse_IntegerBoundary(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader(`[{"costInCents": 9223372036854775807, "clickCount": 4611686018427387904.0}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(math.MaxInt64), *records[0].CostInCents)
	assert.Equal(t, int64(1)<<62, *records[0].ClickCount)
}

func TestParse_EmptyArray(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantIndex int
		wantField string
	}{
		{
			name: "Não é um array",
			in:   `{"timestamp": "2024-06-01T00:00:00"}`,
		},
		{
			name: "Feed null",
			in:   `null`,
		},
		{
			name:      "costInCents como string numérica",
			in:        `[{"costInCents": "50000"}]`,
			wantField: "costInCents",
		},
		{
			name:      "clickCount como string numérica",
			in:        `[{"clickCount": 1}, {"clickCount": "200"}]`,
			wantIndex: 1,
			wantField: "clickCount",
		},
		{
			name:      "costInCents acima do limite de int64",
			in:        `[{"costInCents": 9223372036854775808.0}]`,
			wantField: "costInCents",
		},
		{
			name:      "costInCents não numérico",
			in:        `[{"costInCents": 1}, {"costInCents": "muito"}]`,
			wantIndex: 1,
			wantField: "costInCents",
		},
		{
			name:      "costInCents fracionário",
			in:        `[{"costInCents": 10.5}]`,
			wantField: "costInCents",
		},
		{
			name:      "clickCount booleano",
			in:        `[{"clickCount": 1}, {"clickCount": 2}, {"clickCount": true}]`,
			wantIndex: 2,
			wantField: "clickCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse(context.Background(), strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Nil(t, records)

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, domain.SourceGoogle, validationErr.Source)
			assert.Equal(t, tt.wantIndex, validationErr.Index)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google_ads.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	records, err := NewReader(path).Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
