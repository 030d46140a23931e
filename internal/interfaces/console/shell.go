// Package console implementa el menú interactivo de la terminal sobre los casos de uso.
package console

import (
	"context"
	"io"
	"os"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/application/report"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Opciones del menú principal.
const (
	OptionExit     = 0
	OptionRegister = 1
	OptionEntry    = 2
	OptionExitOp   = 3
	OptionQuery    = 4
	OptionLowStock = 5
	OptionReport   = 6
	OptionList     = 7
	OptionSelf     = 8
	OptionExport   = 9
)

const menuText = "\n=== SISTEMA DE STOCK ===\n" +
	"1-Registrar 2-Entrada 3-Salida 4-Consultar 5-Stock bajo 6-Reporte 7-Listar 8-Autoverificación 9-Exportar PDF 0-Salir\n"

// Deps dependencias del shell.
type Deps struct {
	Products *usecase.ProductUseCase
	Stock    *inventory.RegisterMovementUseCase
	Reports  *report.ReportUseCase
	Log      *logger.Logger
}

// Options ajustes del shell. Los campos vacíos toman valores por defecto.
type Options struct {
	Currency  string
	PDFPath   string
	WriteFile func(name string, data []byte, perm os.FileMode) error
	SelfCheck func(out io.Writer) bool
}

// Shell lee la opción del menú, despacha al caso de uso y muestra el resultado.
type Shell struct {
	deps   Deps
	opts   Options
	prompt *Prompter
	r      renderer
	log    *logger.Logger
}

// NewShell construye el shell sobre la entrada y salida dadas.
func NewShell(deps Deps, opts Options, in io.Reader, out io.Writer) *Shell {
	if opts.WriteFile == nil {
		opts.WriteFile = os.WriteFile
	}
	if opts.PDFPath == "" {
		opts.PDFPath = "reporte-stock.pdf"
	}
	if opts.SelfCheck == nil {
		code := opts.Currency
		opts.SelfCheck = func(w io.Writer) bool { return SelfCheck(w, code) }
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Shell{
		deps:   deps,
		opts:   opts,
		prompt: NewPrompter(in, out),
		r:      renderer{out: out, currency: opts.Currency},
		log:    log.Component("shell"),
	}
}

// Run ejecuta el bucle del menú hasta la opción 0 o el fin de la entrada.
// Si ctx se cancela (Ctrl-C) devuelve ctx.Err() aunque haya una lectura pendiente.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.r.printf("%s", menuText)
		option, err := s.prompt.Int(ctx, "Opción: ")
		if err != nil {
			if isEOF(err) {
				return nil
			}
			return err
		}
		s.log.Debug().Int("option", option).Msg("opción seleccionada")

		switch option {
		case OptionExit:
			s.r.println("Saliendo del sistema...")
			return nil
		case OptionRegister:
			err = s.register(ctx)
		case OptionEntry:
			err = s.entry(ctx)
		case OptionExitOp:
			err = s.exit(ctx)
		case OptionQuery:
			err = s.query(ctx)
		case OptionLowStock:
			err = s.lowStock(ctx)
		case OptionReport:
			err = s.movementReport(ctx)
		case OptionList:
			err = s.list(ctx)
		case OptionSelf:
			s.opts.SelfCheck(s.r.out)
		case OptionExport:
			err = s.export(ctx)
		default:
			s.r.println("Opción inválida. Intente de nuevo.")
		}
		if err != nil {
			if isEOF(err) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.r.println(errorMessage(err))
		}
	}
}

func (s *Shell) register(ctx context.Context) error {
	s.r.println("\n=== REGISTRO DE PRODUCTO ===")

	code, err := s.prompt.Line(ctx, "Código: ")
	if err != nil {
		return err
	}
	if code == "" {
		return markField(domain.ErrInvalidField, "código")
	}
	existing, err := s.deps.Products.Find(ctx, code)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateCode
	}

	name, err := s.prompt.Line(ctx, "Nombre: ")
	if err != nil {
		return err
	}
	if name == "" {
		return markField(domain.ErrInvalidField, "nombre")
	}
	category, err := s.prompt.Line(ctx, "Categoría: ")
	if err != nil {
		return err
	}
	if category == "" {
		return markField(domain.ErrInvalidField, "categoría")
	}
	qty, err := s.prompt.Int(ctx, "Cantidad inicial: ")
	if err != nil {
		return err
	}
	if qty < 0 {
		return domain.ErrNegativeValue
	}
	price, err := s.prompt.Decimal(ctx, "Precio unitario: ")
	if err != nil {
		return err
	}

	out, err := s.deps.Products.Register(ctx, dto.CreateProductRequest{
		Code: code, Name: name, Category: category, Quantity: qty, UnitPrice: price,
	})
	if err != nil {
		return err
	}
	s.r.println("Producto registrado con éxito.")
	s.r.printf("Total de productos registrados: %d\n", out.TotalProducts)
	return nil
}

// askProduct pide el código y muestra nombre y stock actual.
func (s *Shell) askProduct(ctx context.Context) (*dto.ProductResponse, error) {
	code, err := s.prompt.Line(ctx, "Código del producto: ")
	if err != nil {
		return nil, err
	}
	p, err := s.deps.Products.Find(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	s.r.printf("Producto: %s\n", p.Name)
	s.r.printf("Stock actual: %d unidades\n", p.Quantity)
	return p, nil
}

func (s *Shell) entry(ctx context.Context) error {
	s.r.println("\n=== ENTRADA DE PRODUCTOS ===")
	p, err := s.askProduct(ctx)
	if err != nil {
		return err
	}
	qty, err := s.prompt.Int(ctx, "Cantidad a agregar: ")
	if err != nil {
		return err
	}
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	note, err := s.prompt.Line(ctx, "Observación (opcional): ")
	if err != nil {
		return err
	}
	out, err := s.deps.Stock.ApplyEntry(ctx, dto.StockMovementRequest{Code: p.Code, Quantity: qty, Note: note})
	if err != nil {
		return err
	}
	s.r.println("Entrada registrada con éxito.")
	s.r.printf("Stock anterior: %d -> Stock actual: %d\n", out.PreviousStock, out.CurrentStock)
	return nil
}

func (s *Shell) exit(ctx context.Context) error {
	s.r.println("\n=== SALIDA DE PRODUCTOS ===")
	p, err := s.askProduct(ctx)
	if err != nil {
		return err
	}
	if p.Quantity == 0 {
		return domain.ErrEmptyStock
	}
	qty, err := s.prompt.Int(ctx, "Cantidad a retirar: ")
	if err != nil {
		return err
	}
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	if qty > p.Quantity {
		return withAvailable(p.Quantity)
	}
	note, err := s.prompt.Line(ctx, "Observación (opcional): ")
	if err != nil {
		return err
	}
	out, err := s.deps.Stock.ApplyExit(ctx, dto.StockMovementRequest{Code: p.Code, Quantity: qty, Note: note})
	if err != nil {
		return err
	}
	s.r.println("Salida registrada con éxito.")
	s.r.printf("Stock anterior: %d -> Stock actual: %d\n", out.PreviousStock, out.CurrentStock)
	switch domaininv.AlertLevel(out.Alert) {
	case domaininv.AlertOutOfStock:
		s.r.println("ALERTA: ¡producto sin stock!")
	case domaininv.AlertLowStock:
		s.r.println("ATENCIÓN: stock bajo. Considere reponer.")
	}
	return nil
}

func (s *Shell) query(ctx context.Context) error {
	s.r.println("\n=== CONSULTA DE PRODUCTOS ===")
	s.r.println("Tipo de búsqueda:")
	s.r.println("1 - Por código")
	s.r.println("2 - Por nombre")
	s.r.println("3 - Por categoría")
	kind, err := s.prompt.Int(ctx, "Elija una opción: ")
	if err != nil {
		return err
	}
	fields := map[int]repository.SearchField{
		1: repository.SearchByCode,
		2: repository.SearchByName,
		3: repository.SearchByCategory,
	}
	field, ok := fields[kind]
	if !ok {
		s.r.println("Opción inválida.")
		return nil
	}
	term, err := s.prompt.Line(ctx, "Ingrese el término de búsqueda: ")
	if err != nil {
		return err
	}
	if term == "" {
		s.r.println("El término de búsqueda es obligatorio.")
		return nil
	}
	found, err := s.deps.Products.Search(ctx, field, term)
	if err != nil {
		return err
	}

	s.r.println("\nResultados de la búsqueda:")
	s.r.rule(productRule)
	if len(found) == 0 {
		s.r.printf("Ningún producto encontrado con el término '%s'\n", term)
		return nil
	}
	for _, p := range found {
		s.r.product(p)
	}
	s.r.rule(productRule)
	s.r.printf("Total de productos encontrados: %d\n", len(found))
	return nil
}

func (s *Shell) lowStock(ctx context.Context) error {
	s.r.println("\n=== PRODUCTOS CON STOCK BAJO ===")
	threshold, err := s.prompt.Int(ctx, "Cantidad mínima para alerta: ")
	if err != nil {
		return err
	}
	out, err := s.deps.Reports.LowStock(ctx, threshold)
	if err != nil {
		return err
	}

	s.r.printf("\nProductos con stock <= %d unidades:\n", threshold)
	s.r.rule(productRule)
	if out.Count == 0 {
		s.r.println("Ningún producto con stock bajo. Todos los productos están bien abastecidos.")
		return nil
	}
	for _, p := range out.Matches {
		s.r.product(p)
		if p.Quantity == 0 {
			s.r.println("   ¡SIN STOCK!")
		}
	}
	s.r.rule(productRule)
	s.r.println("Resumen de los productos con stock bajo:")
	s.r.printf("   - Cantidad de productos: %d\n", out.Count)
	s.r.printf("   - Valor total de estos productos: %s\n", s.r.money(out.TotalValue))
	return nil
}

func (s *Shell) movementReport(ctx context.Context) error {
	out, err := s.deps.Reports.MovementReport(ctx)
	if err != nil {
		return err
	}
	if out.Empty {
		s.r.println("Ningún movimiento registrado todavía.")
		return nil
	}
	s.r.println("\n=== REPORTE DE MOVIMIENTOS ===")
	s.r.println("Historial de movimientos:")
	s.r.rule(movementRule)
	for _, m := range out.Movements {
		s.r.movement(m)
	}
	s.r.rule(movementRule)
	s.r.println("Estadísticas de los movimientos:")
	s.r.printf("   - Total de movimientos: %d\n", out.Total)
	s.r.printf("   - Entradas: %d movimientos (%d unidades)\n", out.EntryCount, out.EntryQty)
	s.r.printf("   - Salidas: %d movimientos (%d unidades)\n", out.ExitCount, out.ExitQty)
	s.r.printf("   - Saldo de movimientos: %d unidades\n", out.NetQty)
	return nil
}

func (s *Shell) list(ctx context.Context) error {
	out, err := s.deps.Reports.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(out.Products) == 0 {
		s.r.println("Ningún producto registrado todavía.")
		return nil
	}
	s.r.println("\n=== LISTA DE PRODUCTOS ===")
	s.r.printf("Total de productos: %d\n", len(out.Products))
	s.r.rule(productRule)
	for _, p := range out.Products {
		s.r.product(p)
	}
	s.r.rule(productRule)
	s.r.println("Resumen del stock:")
	s.r.printf("   - Cantidad total de ítems: %d\n", out.TotalQuantity)
	s.r.printf("   - Valor total del stock: %s\n", s.r.money(out.TotalValue))
	return nil
}

func (s *Shell) export(ctx context.Context) error {
	b, err := s.deps.Reports.ExportPDF(ctx)
	if err != nil {
		return err
	}
	if err := s.opts.WriteFile(s.opts.PDFPath, b, 0o644); err != nil {
		return err
	}
	s.log.Info().Str("path", s.opts.PDFPath).Int("bytes", len(b)).Msg("reporte PDF exportado")
	s.r.printf("Reporte exportado en %s\n", s.opts.PDFPath)
	return nil
}
