package memory

import (
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos en memoria (solo anexar).
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el adaptador del libro de movimientos.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

// Append agrega el movimiento al final del libro.
func (r *MovementRepo) Append(movement *entity.Movement) error {
	r.s.movements = append(r.s.movements, movement)
	return nil
}

// List devuelve los movimientos en orden de creación.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(r.s.movements))
	copy(out, r.s.movements)
	return out, nil
}

// Count número de movimientos registrados.
func (r *MovementRepo) Count() (int, error) {
	return len(r.s.movements), nil
}
