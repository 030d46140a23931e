package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/currency"
)

const (
	productRule  = 100
	movementRule = 120
)

// renderer formatea productos, movimientos y errores para la terminal.
type renderer struct {
	out      io.Writer
	currency string
}

func (r renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

func (r renderer) println(args ...interface{}) {
	fmt.Fprintln(r.out, args...)
}

func (r renderer) rule(n int) {
	r.println(strings.Repeat("-", n))
}

func (r renderer) money(d decimal.Decimal) string {
	return currency.Format(d, r.currency)
}

func (r renderer) product(p dto.ProductResponse) {
	r.printf("Código: %s | Nombre: %s | Categoría: %s | Cantidad: %d | Precio: %s\n",
		p.Code, p.Name, p.Category, p.Quantity, r.money(p.UnitPrice))
}

func (r renderer) movement(m dto.MovementResponse) {
	r.printf("[%s] %s de %d un. (Producto: %s) - %s\n",
		m.Date.Format(entity.MovementDateLayout), m.Kind, m.Quantity, m.ProductCode, m.Note)
}

// errorMessage traduce un error de dominio al mensaje para el usuario.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateCode):
		return "Error: el código ya existe. Use un código diferente."
	case errors.Is(err, domain.ErrNegativeValue):
		return "Error: el valor no puede ser negativo."
	case errors.Is(err, domain.ErrInvalidField):
		return "Error: " + err.Error() + "."
	case errors.Is(err, domain.ErrNotFound):
		return "Producto no encontrado. Verifique el código."
	case errors.Is(err, domain.ErrEmptyStock):
		return "Error: producto sin stock disponible."
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Error: la cantidad debe ser positiva."
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Error: " + err.Error() + "."
	default:
		return "Error inesperado: " + err.Error()
	}
}
