package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/pkg/config"
)

func TestFromMap_Defaults(t *testing.T) {
	cfg, err := config.FromMap(nil)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "BRL", cfg.App.Currency)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "estoque", cfg.Metrics.Prefix)
	assert.Equal(t, "reporte-stock.pdf", cfg.Report.PDFPath)
	assert.Equal(t, "warn", cfg.LogLevelFor("warn"))
}

func TestFromMap_Overrides(t *testing.T) {
	cfg, err := config.FromMap(map[string]string{
		"APP_ENV":      "production",
		"APP_CURRENCY": "cop",
		"HTTP_PORT":    "9090",
		"LOG_LEVEL":    "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "COP", cfg.App.Currency)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.LogLevelFor("warn"))
}

func TestFromMap_PuertoInvalido(t *testing.T) {
	_, err := config.FromMap(map[string]string{"HTTP_PORT": "abc"})
	assert.Error(t, err)
}
