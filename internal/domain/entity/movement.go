package entity

import "time"

// MovementKind tipo de movimiento de stock.
type MovementKind int

// Tipos de movimiento.
const (
	MovementEntry MovementKind = iota + 1 // entrada
	MovementExit                          // salida
)

// String devuelve la etiqueta usada en pantalla y en los reportes.
func (k MovementKind) String() string {
	switch k {
	case MovementEntry:
		return "ENTRADA"
	case MovementExit:
		return "SALIDA"
	default:
		return "DESCONOCIDO"
	}
}

// Formato de fecha de los movimientos.
const MovementDateLayout = "02/01/2006 15:04:05"

// Movement registro inmutable de una entrada o salida de stock.
// ProductCode no se valida contra el catálogo una vez creado.
type Movement struct {
	ID          string
	ProductCode string
	Kind        MovementKind
	Quantity    int // siempre > 0
	Note        string
	Date        time.Time
}
