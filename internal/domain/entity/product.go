package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Code es inmutable tras el registro; Quantity solo cambia vía movimientos de stock.
type Product struct {
	Code      string // clave única (comparación sin mayúsculas ni espacios)
	Name      string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockValue devuelve precio unitario × cantidad en stock.
func (p *Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
