package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo al catálogo y al libro de movimientos.
// Garantiza que la mutación de stock y el registro del movimiento sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
	View(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Clock capacidad de obtener la hora actual (inyectable en tests).
type Clock interface {
	Now() time.Time
}

// SystemClock reloj de pared.
type SystemClock struct{}

// Now devuelve time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapta una función a Clock.
type ClockFunc func() time.Time

// Now invoca la función.
func (f ClockFunc) Now() time.Time { return f() }

// Observer recibe notificaciones de cambios de stock (métricas).
type Observer interface {
	ProductRegistered(quantity int)
	MovementApplied(kind entity.MovementKind, quantity int, alert domaininv.AlertLevel)
}

// NopObserver no hace nada.
type NopObserver struct{}

func (NopObserver) ProductRegistered(int)                                           {}
func (NopObserver) MovementApplied(entity.MovementKind, int, domaininv.AlertLevel) {}
