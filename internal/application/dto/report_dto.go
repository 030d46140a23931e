package dto

import "github.com/shopspring/decimal"

// StockListReport listado completo con totales.
type StockListReport struct {
	Products      []ProductResponse `json:"products"`
	TotalQuantity int               `json:"total_quantity"`
	TotalValue    decimal.Decimal   `json:"total_value"` // Σ precio × cantidad
}

// LowStockReport productos con cantidad ≤ umbral, en orden del catálogo.
type LowStockReport struct {
	Threshold  int               `json:"threshold"`
	Matches    []ProductResponse `json:"matches"`
	Count      int               `json:"count"`
	TotalValue decimal.Decimal   `json:"total_value"`
}

// MovementReport historial y estadísticas. Empty indica libro vacío (no es error).
type MovementReport struct {
	Empty      bool               `json:"empty"`
	Movements  []MovementResponse `json:"movements"`
	Total      int                `json:"total"`
	EntryCount int                `json:"entry_count"`
	EntryQty   int                `json:"entry_qty"`
	ExitCount  int                `json:"exit_count"`
	ExitQty    int                `json:"exit_qty"`
	NetQty     int                `json:"net_qty"` // EntryQty - ExitQty
}
