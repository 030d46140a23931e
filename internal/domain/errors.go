package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: el llamador decide si re-pregunta o informa y vuelve al menú.
var (
	ErrInvalidField      = errors.New("campo obligatorio vacío")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser positiva")
	ErrNegativeValue     = errors.New("el valor no puede ser negativo")
	ErrDuplicateCode     = errors.New("el código ya existe")
	ErrNotFound          = errors.New("producto no encontrado")
	ErrEmptyStock        = errors.New("producto sin stock disponible")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
