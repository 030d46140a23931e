// Package memory implementa los puertos de catálogo y libro de movimientos en memoria.
// Los datos viven solo mientras dura el proceso.
package memory

import (
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Store agrupa las dos colecciones. No es seguro para uso concurrente por sí mismo:
// el acceso debe pasar por TxRunner.
type Store struct {
	products  []*entity.Product
	movements []*entity.Movement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}
