package console

import (
	"fmt"

	"github.com/jhoicas/inventario-console/internal/domain"
)

func markField(err error, field string) error {
	return fmt.Errorf("%w: %s", err, field)
}

func withAvailable(available int) error {
	return fmt.Errorf("%w: disponible %d unidades", domain.ErrInsufficientStock, available)
}
