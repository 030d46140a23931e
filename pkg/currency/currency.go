// Package currency formatea importes decimales en la moneda configurada.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Default moneda usada si no se configura otra.
const Default = "BRL"

// Format devuelve el importe con símbolo y separadores de la moneda (p. ej. R$1.234,50).
func Format(amount decimal.Decimal, code string) string {
	if code == "" {
		code = Default
	}
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Known indica si go-money conoce el código ISO 4217.
func Known(code string) bool {
	return money.GetCurrency(code) != nil
}
