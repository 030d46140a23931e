package dto

import (
	"time"
)

// StockMovementRequest body para registrar una entrada o salida.
type StockMovementRequest struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"product_code"`
	Kind        string    `json:"kind"` // ENTRADA, SALIDA
	Quantity    int       `json:"quantity"`
	Note        string    `json:"note"`
	Date        time.Time `json:"date"`
}

// StockChangeResponse resultado de aplicar un movimiento a un producto.
type StockChangeResponse struct {
	Movement      MovementResponse `json:"movement"`
	ProductName   string           `json:"product_name"`
	PreviousStock int              `json:"previous_stock"`
	CurrentStock  int              `json:"current_stock"`
	Alert         string           `json:"alert,omitempty"` // LOW_STOCK, OUT_OF_STOCK (solo salidas)
}
