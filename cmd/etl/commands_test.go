package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/etl"
)

func writeFeeds(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	fb := filepath.Join(dir, "facebook_ads.csv")
	require.NoError(t, os.WriteFile(fb, []byte("ad_id,date,platform,clicks,spend_usd,impressions\n1,2024-06-01,Facebook,300,1000.00,4500\n"), 0o644))

	gg := filepath.Join(dir, "google_ads.json")
	require.NoError(t, os.WriteFile(gg, []byte(`[{"campaignId":"x","timestamp":"2024-06-01T00:00:00","source_platform":"Google","clickCount":200,"costInCents":50000}]`), 0o644))

	return fb, gg
}

func TestSnapshotCommand(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "")
	fb, gg := writeFeeds(t)
	out := filepath.Join(t.TempDir(), "out")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"snapshot", "--facebook", fb, "--google", gg, "--out", out})

	require.NoError(t, cmd.Execute())

	path := filepath.Join(out, etl.SnapshotFileName)
	assert.Equal(t, path, strings.TrimSpace(stdout.String()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "2024-06-01,Google,200,500.00")
}

func TestRunCommand_RequiresDatabase(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "")
	fb, gg := writeFeeds(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--facebook", fb, "--google", gg})

	err := cmd.Execute()
	assert.ErrorIs(t, err, etl.ErrStoreNotConfigured)
}
