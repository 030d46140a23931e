package repository

import (
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos (solo anexar).
type MovementRepository interface {
	Append(movement *entity.Movement) error
	// List devuelve los movimientos en orden de creación.
	List() ([]*entity.Movement, error)
	Count() (int, error)
}
