package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ProductResponse salida de un producto (copia, no referencia al catálogo).
type ProductResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	StockValue decimal.Decimal `json:"stock_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// RegisterProductResponse producto registrado más el movimiento inicial (si hubo stock).
type RegisterProductResponse struct {
	Product         ProductResponse   `json:"product"`
	InitialMovement *MovementResponse `json:"initial_movement,omitempty"`
	TotalProducts   int               `json:"total_products"`
}

// SearchProductsRequest búsqueda por subcadena.
type SearchProductsRequest struct {
	Field string `query:"field"` // code, name, category
	Term  string `query:"q"`
}
