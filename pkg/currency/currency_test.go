package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-console/pkg/currency"
)

func TestFormat_BRL(t *testing.T) {
	got := currency.Format(decimal.RequireFromString("1234.5"), "BRL")
	assert.Contains(t, got, "R$")
	assert.Contains(t, got, "1.234,50")
}

func TestFormat_Redondea(t *testing.T) {
	got := currency.Format(decimal.RequireFromString("2.499"), "")
	assert.Contains(t, got, "2,50")
}

func TestKnown(t *testing.T) {
	assert.True(t, currency.Known("BRL"))
	assert.True(t, currency.Known("COP"))
	assert.False(t, currency.Known("XXXX"))
}
