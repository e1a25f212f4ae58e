package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// No roadfix.yaml in the temp dir
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.InDelta(t, 10.0, cfg.Roads.OutlierKM, 0.001)
	assert.Equal(t, 5, cfg.Roads.Window)
	assert.True(t, cfg.Roads.FillGaps)
	assert.Equal(t, 1, cfg.Roads.Workers)
	assert.True(t, cfg.Roads.InsertGapColumn)
	assert.Equal(t, "BMMS_overview", cfg.Bridges.Sheet)
	assert.Equal(t, 1000001, cfg.Segments.StartID)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: console
roads:
  outlier_km: 5.5
  fill_gaps: false
  workers: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roadfix.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.InDelta(t, 5.5, cfg.Roads.OutlierKM, 0.001)
	assert.False(t, cfg.Roads.FillGaps)
	assert.Equal(t, 4, cfg.Roads.Workers)
	// Defaults still apply for unset values
	assert.Equal(t, 5, cfg.Roads.Window)
	assert.Equal(t, "BMMS_overview", cfg.Bridges.Sheet)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roadfix.yaml"), []byte("roads: [\n"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
bridges:
  sheet: Sheet1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roadfix.yaml"), []byte(yaml), 0644))

	t.Setenv("ROADFIX_LOG_LEVEL", "warn")
	t.Setenv("ROADFIX_BRIDGES_SHEET", "Bridges")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Bridges", cfg.Bridges.Sheet)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("ROADFIX_ROADS_WINDOW", "7")
	t.Setenv("ROADFIX_SEGMENTS_START_ID", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Roads.Window)
	assert.Equal(t, 1, cfg.Segments.StartID)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Roads.OutlierKM = 10
	cfg.Roads.Window = 5
	cfg.Roads.Workers = 1
	cfg.Bridges.Sheet = "BMMS_overview"
	cfg.Segments.StartID = 1000001
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, validDefaults().Validate())
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := validDefaults()
	cfg.Roads.OutlierKM = 0
	cfg.Roads.Window = 0
	cfg.Bridges.Sheet = " "

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roads.outlier_km must be > 0")
	assert.Contains(t, err.Error(), "roads.window must be >= 1")
	assert.Contains(t, err.Error(), "bridges.sheet is required")
}

func TestValidate_WorkerBounds(t *testing.T) {
	cfg := validDefaults()

	cfg.Roads.Workers = 0
	assert.ErrorContains(t, cfg.Validate(), "roads.workers must be between 1 and 64")

	cfg.Roads.Workers = 65
	assert.ErrorContains(t, cfg.Validate(), "roads.workers must be between 1 and 64")

	cfg.Roads.Workers = 64
	assert.NoError(t, cfg.Validate())
}
