package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa el acceso al Store con un único mutex que protege ambas colecciones.
// No hay rollback: los casos de uso validan todo antes de mutar.
type TxRunner struct {
	mu    sync.RWMutex
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con acceso exclusivo a los repositorios.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(NewMovementRepository(r.store), NewProductRepository(r.store))
}

// View ejecuta fn con acceso de solo lectura (varios lectores a la vez).
func (r *TxRunner) View(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(NewMovementRepository(r.store), NewProductRepository(r.store))
}
