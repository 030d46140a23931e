package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/pkg/logger"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Component("inventory").Info().Str("code", "P1").Msg("movimiento")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "movimiento", line["message"])
	assert.Equal(t, "P1", line["code"])
	assert.Equal(t, "inventory", line["component"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("no debe aparecer")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}
