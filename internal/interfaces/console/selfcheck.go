package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/application/report"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/infrastructure/memory"
)

// checker acumula los resultados de la autoverificación.
type checker struct {
	r      renderer
	passed int
	failed int
}

func (c *checker) check(name string, ok bool) {
	if ok {
		c.passed++
		c.r.printf("[PASA]  %s\n", name)
		return
	}
	c.failed++
	c.r.printf("[FALLA] %s\n", name)
}

// SelfCheck ejecuta un escenario completo sobre un almacén nuevo y reporta cada verificación.
// Los datos del usuario no se tocan. Devuelve true si todas las verificaciones pasan.
func SelfCheck(out io.Writer, currencyCode string) bool {
	ctx := context.Background()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	products := usecase.NewProductUseCase(tx, nil, nil, nil)
	stock := inventory.NewRegisterMovementUseCase(tx, nil, nil, nil)
	reports := report.NewReportUseCase(tx, nil, nil)

	c := &checker{r: renderer{out: out, currency: currencyCode}}
	c.r.println("\n=== AUTOVERIFICACIÓN DEL SISTEMA ===")

	register := func(code, name, category string, qty int, price string) error {
		_, err := products.Register(ctx, dto.CreateProductRequest{
			Code: code, Name: name, Category: category, Quantity: qty, UnitPrice: decimal.RequireFromString(price),
		})
		return err
	}
	quantityOf := func(code string) int {
		p, err := products.Find(ctx, code)
		if err != nil || p == nil {
			return -1
		}
		return p.Quantity
	}
	move := func(apply func(context.Context, dto.StockMovementRequest) (*dto.StockChangeResponse, error), code string, qty int) (*dto.StockChangeResponse, error) {
		return apply(ctx, dto.StockMovementRequest{Code: code, Quantity: qty})
	}

	c.r.println("\n-- Catálogo --")
	c.check("registrar producto 001 (Notebook, 10 un.)", register("001", "Notebook", "Electrónicos", 10, "2500") == nil)
	c.check("rechazar código duplicado", errors.Is(register("001", "Otro", "Varios", 1, "1"), domain.ErrDuplicateCode))
	missing, err := products.Find(ctx, "999")
	c.check("producto 999 inexistente", err == nil && missing == nil)
	c.check("registrar producto 002 sin stock", register("002", "Mouse", "Periféricos", 0, "0.01") == nil)
	c.check("rechazar código vacío", errors.Is(register("", "Teclado", "Periféricos", 1, "1"), domain.ErrInvalidField))

	c.r.println("\n-- Movimientos --")
	c.check("registrar TEST001 (5 un.)", register("TEST001", "Producto de prueba", "Pruebas", 5, "10") == nil)
	c.check("registrar TEST002 (0 un.)", register("TEST002", "Producto agotado", "Pruebas", 0, "15") == nil)
	_, err = move(stock.ApplyEntry, "TEST001", 3)
	c.check("entrada de 3 un. en TEST001", err == nil && quantityOf("TEST001") == 8)
	_, err = move(stock.ApplyExit, "TEST001", 2)
	c.check("salida de 2 un. en TEST001", err == nil && quantityOf("TEST001") == 6)
	_, err = move(stock.ApplyEntry, "INEXISTENTE", 1)
	c.check("entrada en producto inexistente", errors.Is(err, domain.ErrNotFound))
	_, err = move(stock.ApplyExit, "TEST001", 100)
	c.check("salida mayor al stock disponible", errors.Is(err, domain.ErrInsufficientStock) && quantityOf("TEST001") == 6)
	_, err = move(stock.ApplyExit, "TEST002", 1)
	c.check("salida de producto sin stock", errors.Is(err, domain.ErrEmptyStock))
	changed, err := move(stock.ApplyExit, "TEST001", 1)
	c.check("alerta de stock bajo tras la salida", err == nil && changed.CurrentStock == 5 && changed.Alert == string(domaininv.AlertLowStock))

	c.r.println("\n-- Búsquedas --")
	c.check("búsqueda exacta '001'", quantityOf("001") == 10)
	c.check("búsqueda sin distinguir mayúsculas 'test001'", quantityOf("test001") == 5)
	c.check("búsqueda con espacios '  001  '", quantityOf("  001  ") == 10)

	c.r.println("\n-- Reportes --")
	all, err := reports.ListAll(ctx)
	c.check("cantidad de productos = 4", err == nil && len(all.Products) == 4)
	c.check(fmt.Sprintf("valor total del stock = %s", c.r.money(decimal.RequireFromString("25050"))),
		err == nil && all.TotalValue.Equal(decimal.RequireFromString("25050")))
	low, err := reports.LowStock(ctx, domaininv.AlertThreshold)
	c.check("stock bajo (<= 5) = 3 productos", err == nil && low.Count == 3)
	empty, err := reports.LowStock(ctx, 0)
	c.check("sin stock (<= 0) = 2 productos", err == nil && empty.Count == 2)
	movs, err := reports.MovementReport(ctx)
	c.check("movimientos: 3 entradas (18 un.), 2 salidas (3 un.)", err == nil &&
		movs.EntryCount == 3 && movs.EntryQty == 18 && movs.ExitCount == 2 && movs.ExitQty == 3 && movs.NetQty == 15)

	c.r.println("\n=== RESULTADO ===")
	c.r.printf("Verificaciones: %d | Pasaron: %d | Fallaron: %d\n", c.passed+c.failed, c.passed, c.failed)
	if c.failed == 0 {
		c.r.println("Todas las verificaciones pasaron.")
		return true
	}
	c.r.println("Hay verificaciones con falla. Revise los mensajes anteriores.")
	return false
}
