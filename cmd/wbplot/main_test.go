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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vdobler/wbplot"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"info", zap.InfoLevel},
		{"warn", zap.WarnLevel},
		{"error", zap.ErrorLevel},
		{"", zap.InfoLevel},
		{"verbose", zap.InfoLevel},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseLogLevel(tc.in), tc.in)
	}
}

func TestBuildLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wbplot.log")
	log, err := buildLogger(path, "debug")
	require.NoError(t, err)
	log.Debug("hello", zap.Int("panels", 2))
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)
	assert.Contains(t, string(raw), `"panels":2`)
	assert.Contains(t, string(raw), `"ts":`)

	_, err = buildLogger(filepath.Join(t.TempDir(), "no", "such", "dir.log"), "info")
	assert.Error(t, err)

	log, err = buildLogger("", "warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	path := filepath.Join(t.TempDir(), "wbplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  format: svg\n  dpi: 150\nlogging:\n  level: debug\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "svg", cfg.Render.Format)
	assert.Equal(t, 150.0, cfg.Render.DPI)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Empty(t, cfg.Render.OutputDir)
}

func TestLoadConfigEnv(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	t.Setenv("WBPLOT_RENDER_FORMAT", "pdf")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Render.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		chart, chartOut, flag string
		cfg                   RenderConfig
		want                  string
	}{
		{"charts/gdp.yaml", "", "", RenderConfig{}, filepath.Join("charts", "gdp.png")},
		{"charts/gdp.yaml", "", "", RenderConfig{Format: "svg"}, filepath.Join("charts", "gdp.svg")},
		{"charts/gdp.yaml", "", "", RenderConfig{Format: "pdf", OutputDir: "out"}, filepath.Join("out", "gdp.pdf")},
		{"charts/gdp.yaml", "growth.png", "", RenderConfig{}, "growth.png"},
		{"charts/gdp.yaml", "growth.png", "", RenderConfig{OutputDir: "out"}, filepath.Join("out", "growth.png")},
		{"charts/gdp.yaml", "growth.png", "x.eps", RenderConfig{OutputDir: "out"}, "x.eps"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, outputPath(tc.chart, tc.chartOut, tc.flag, tc.cfg))
	}
}

func TestRunFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFormat(&buf, []string{"2015", "25000", "1234.5"}, wbplot.NumberFormat{}))
	assert.Equal(t, "2015\n25K\n1,234\n", buf.String())

	assert.Error(t, runFormat(&buf, []string{"lots"}, wbplot.NumberFormat{}))
}

func TestRunPalettes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runPalettes(&buf, nil, false))
	assert.Contains(t, buf.String(), "wb_categorical\n")
	assert.NotContains(t, buf.String(), "#")

	buf.Reset()
	require.NoError(t, runPalettes(&buf, []string{"wb_gender"}, false))
	assert.True(t, strings.HasPrefix(buf.String(), "wb_gender:\n"))
	assert.Contains(t, buf.String(), "#664AB6")

	assert.Error(t, runPalettes(&buf, []string{"rainbow"}, false))
}

const testChart = `
cols: 2
panels:
  - series:
      - {kind: barh, categories: [a, b], y: [40, 12]}
  - series:
      - {kind: scatter, x: [1, 2, 3], y: [3, 1, 2]}
`

func TestRunClassifyAndRender(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testChart), 0o644))

	var buf bytes.Buffer
	require.NoError(t, runClassify(&buf, path))
	assert.Equal(t, "panel 0,0: bar horizontal\npanel 0,1: scatter\n", buf.String())

	require.NoError(t, runRender(path, "", RenderConfig{Format: "svg"}))
	info, err := os.Stat(filepath.Join(dir, "mixed.svg"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, runRender(filepath.Join(dir, "missing.yaml"), "", RenderConfig{}))
}
